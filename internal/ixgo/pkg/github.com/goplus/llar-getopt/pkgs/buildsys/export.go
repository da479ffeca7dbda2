// export by github.com/goplus/ixgo/cmd/qexp

package buildsys

import (
	q "github.com/goplus/llar-getopt/pkgs/buildsys"

	"reflect"

	"github.com/goplus/ixgo"
)

func init() {
	ixgo.RegisterPackage(&ixgo.Package{
		Name: "buildsys",
		Path: "github.com/goplus/llar-getopt/pkgs/buildsys",
		Deps: map[string]string{
			"bytes":                        "bytes",
			"context":                      "context",
			"errors":                       "errors",
			"github.com/charmbracelet/log": "log",
			"io":                           "io",
			"maps":                         "maps",
			"os":                           "os",
			"os/exec":                      "exec",
			"slices":                       "slices",
			"strconv":                      "strconv",
			"strings":                      "strings",
			"sync":                         "sync",
		},
		Interfaces: map[string]reflect.Type{
			"BuildSystem":  reflect.TypeOf((*q.BuildSystem)(nil)).Elem(),
			"Buildable":    reflect.TypeOf((*q.Buildable)(nil)).Elem(),
			"Configurable": reflect.TypeOf((*q.Configurable)(nil)).Elem(),
			"Generator":    reflect.TypeOf((*q.Generator)(nil)).Elem(),
			"Installable":  reflect.TypeOf((*q.Installable)(nil)).Elem(),
		},
		NamedTypes: map[string]reflect.Type{
			"Command":   reflect.TypeOf((*q.Command)(nil)).Elem(),
			"ToolError": reflect.TypeOf((*q.ToolError)(nil)).Elem(),
		},
		AliasTypes: map[string]reflect.Type{},
		Vars:       map[string]reflect.Value{},
		Funcs: map[string]reflect.Value{
			"MergeEnv": reflect.ValueOf(q.MergeEnv),
			"Run":      reflect.ValueOf(q.Run),
		},
		TypedConsts:   map[string]ixgo.TypedConst{},
		UntypedConsts: map[string]ixgo.UntypedConst{},
	})
}
