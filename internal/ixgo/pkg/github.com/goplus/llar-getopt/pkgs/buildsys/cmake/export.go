// export by github.com/goplus/ixgo/cmd/qexp

package cmake

import (
	q "github.com/goplus/llar-getopt/pkgs/buildsys/cmake"

	"go/constant"
	"reflect"

	"github.com/goplus/ixgo"
)

func init() {
	ixgo.RegisterPackage(&ixgo.Package{
		Name: "cmake",
		Path: "github.com/goplus/llar-getopt/pkgs/buildsys/cmake",
		Deps: map[string]string{
			"cmp":     "cmp",
			"context": "context",
			"fmt":     "fmt",
			"github.com/goplus/llar-getopt/pkgs/buildsys": "buildsys",
			"github.com/goplus/llar-getopt/recipe":        "recipe",
			"go.trai.ch/zerr":                             "zerr",
			"maps":                                        "maps",
			"os":                                          "os",
			"path/filepath":                               "filepath",
			"slices":                                      "slices",
			"sort":                                        "sort",
			"strings":                                     "strings",
		},
		Interfaces: map[string]reflect.Type{},
		NamedTypes: map[string]reflect.Type{
			"CMake":     reflect.TypeOf((*q.CMake)(nil)).Elem(),
			"Deps":      reflect.TypeOf((*q.Deps)(nil)).Elem(),
			"Toolchain": reflect.TypeOf((*q.Toolchain)(nil)).Elem(),
		},
		AliasTypes: map[string]reflect.Type{},
		Vars:       map[string]reflect.Value{},
		Funcs: map[string]reflect.Value{
			"DefaultGenerator": reflect.ValueOf(q.DefaultGenerator),
			"IsMultiConfig":    reflect.ValueOf(q.IsMultiConfig),
			"Layout":           reflect.ValueOf(q.Layout),
			"New":              reflect.ValueOf(q.New),
			"NewDeps":          reflect.ValueOf(q.NewDeps),
			"NewToolchain":     reflect.ValueOf(q.NewToolchain),
		},
		TypedConsts: map[string]ixgo.TypedConst{},
		UntypedConsts: map[string]ixgo.UntypedConst{
			"DepsFile":      {Typ: "untyped string", Value: constant.MakeString(string(q.DepsFile))},
			"ToolchainFile": {Typ: "untyped string", Value: constant.MakeString(string(q.ToolchainFile))},
		},
	})
}
