// export by github.com/goplus/ixgo/cmd/qexp

package recipe

import (
	q "github.com/goplus/llar-getopt/recipe"

	"go/constant"
	"reflect"

	"github.com/goplus/ixgo"
)

func init() {
	ixgo.RegisterPackage(&ixgo.Package{
		Name: "recipe",
		Path: "github.com/goplus/llar-getopt/recipe",
		Deps: map[string]string{
			"context":                      "context",
			"fmt":                          "fmt",
			"github.com/charmbracelet/log": "log",
			"github.com/goplus/llar-getopt/pkgs/mod/module": "module",
			"github.com/qiniu/x/gsh":                        "gsh",
			"go.trai.ch/zerr":                               "zerr",
			"golang.org/x/mod/semver":                       "semver",
			"io":                                            "io",
			"maps":                                          "maps",
			"os":                                            "os",
			"runtime":                                       "runtime",
			"slices":                                        "slices",
			"sort":                                          "sort",
			"strconv":                                       "strconv",
			"strings":                                       "strings",
		},
		Interfaces: map[string]reflect.Type{},
		NamedTypes: map[string]reflect.Type{
			"Combination": reflect.TypeOf((*q.Combination)(nil)).Elem(),
			"Context":     reflect.TypeOf((*q.Context)(nil)).Elem(),
			"Dependency":  reflect.TypeOf((*q.Dependency)(nil)).Elem(),
			"Hook":        reflect.TypeOf((*q.Hook)(nil)).Elem(),
			"Identity":    reflect.TypeOf((*q.Identity)(nil)).Elem(),
			"Layout":      reflect.TypeOf((*q.Layout)(nil)).Elem(),
			"Matrix":      reflect.TypeOf((*q.Matrix)(nil)).Elem(),
			"Option":      reflect.TypeOf((*q.Option)(nil)).Elem(),
			"Options":     reflect.TypeOf((*q.Options)(nil)).Elem(),
			"Recipe":      reflect.TypeOf((*q.Recipe)(nil)).Elem(),
			"RecipeF":     reflect.TypeOf((*q.RecipeF)(nil)).Elem(),
			"Settings":    reflect.TypeOf((*q.Settings)(nil)).Elem(),
		},
		AliasTypes: map[string]reflect.Type{},
		Vars: map[string]reflect.Value{
			"Axes":                  reflect.ValueOf(&q.Axes),
			"ErrBuild":              reflect.ValueOf(&q.ErrBuild),
			"ErrConfiguration":      reflect.ValueOf(&q.ErrConfiguration),
			"ErrDependencyNotFound": reflect.ValueOf(&q.ErrDependencyNotFound),
			"ErrInstall":            reflect.ValueOf(&q.ErrInstall),
			"ErrInvalidOptionValue": reflect.ValueOf(&q.ErrInvalidOptionValue),
			"ErrInvalidRecipe":      reflect.ValueOf(&q.ErrInvalidRecipe),
			"ErrMissingSetting":     reflect.ValueOf(&q.ErrMissingSetting),
			"ErrUnknownOption":      reflect.ValueOf(&q.ErrUnknownOption),
			"ErrUnsupportedSetting": reflect.ValueOf(&q.ErrUnsupportedSetting),
		},
		Funcs: map[string]reflect.Value{
			"BoolOption":        reflect.ValueOf(q.BoolOption),
			"Gopt_RecipeF_Main": reflect.ValueOf(q.Gopt_RecipeF_Main),
			"HostArch":          reflect.ValueOf(q.HostArch),
			"HostCompiler":      reflect.ValueOf(q.HostCompiler),
			"HostOS":            reflect.ValueOf(q.HostOS),
			"NewContext":        reflect.ValueOf(q.NewContext),
			"SettingsFrom":      reflect.ValueOf(q.SettingsFrom),
		},
		TypedConsts: map[string]ixgo.TypedConst{},
		UntypedConsts: map[string]ixgo.UntypedConst{
			"AxisArch":      {Typ: "untyped string", Value: constant.MakeString(string(q.AxisArch))},
			"AxisBuildType": {Typ: "untyped string", Value: constant.MakeString(string(q.AxisBuildType))},
			"AxisCompiler":  {Typ: "untyped string", Value: constant.MakeString(string(q.AxisCompiler))},
			"AxisOS":        {Typ: "untyped string", Value: constant.MakeString(string(q.AxisOS))},
			"GopPackage":    {Typ: "untyped bool", Value: constant.MakeBool(bool(q.GopPackage))},
			"OSLinux":       {Typ: "untyped string", Value: constant.MakeString(string(q.OSLinux))},
			"OSMacos":       {Typ: "untyped string", Value: constant.MakeString(string(q.OSMacos))},
			"OSWindows":     {Typ: "untyped string", Value: constant.MakeString(string(q.OSWindows))},
		},
	})
}
