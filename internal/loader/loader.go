// Package loader turns *_recipe.gox scripts into recipes.
package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/goplus/ixgo"
	"github.com/goplus/ixgo/xgobuild"
	"go.trai.ch/zerr"

	"github.com/goplus/xgo/ast"
	"github.com/goplus/xgo/parser"
	"github.com/goplus/xgo/token"

	llarixgo "github.com/goplus/llar-getopt/internal/ixgo"
	"github.com/goplus/llar-getopt/recipe"
)

// ErrInvalidScript reports a recipe script that cannot be loaded.
var ErrInvalidScript = zerr.New("invalid recipe script")

// classfileMain represents a XGo class file that can be executed
type classfileMain interface {
	Main()
}

// Load loads the recipe script at path from the local filesystem.
func Load(path string) (*recipe.Recipe, error) {
	fsys := os.DirFS(filepath.Dir(path)).(fs.ReadFileFS)
	return loadFS(fsys, filepath.Base(path))
}

// LoadFS loads a recipe script from fsys.
// The path should be relative to the filesystem root.
func LoadFS(fsys fs.ReadFileFS, path string) (*recipe.Recipe, error) {
	return loadFS(fsys, path)
}

func loadFS(fsys fs.ReadFileFS, path string) (*recipe.Recipe, error) {
	structName, ok := strings.CutSuffix(filepath.Base(path), llarixgo.RecipeExt)
	if !ok || structName == "" || strings.Contains(structName, "_") {
		return nil, zerr.With(zerr.Wrap(ErrInvalidScript, "file name is not valid"), "path", path)
	}
	content, err := fsys.ReadFile(path)
	if err != nil {
		return nil, err
	}

	ctx := ixgo.NewContext(0)
	interp, err := load(ctx, path, content)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(ErrInvalidScript, err.Error()), "path", path)
	}

	class, err := newStructElem(interp, structName)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	field := class.FieldByName("RecipeF")
	if !field.IsValid() {
		return nil, zerr.With(zerr.Wrap(ErrInvalidScript, "not a recipe classfile"), "path", path)
	}
	base, ok := field.Addr().Interface().(*recipe.RecipeF)
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrInvalidScript, "not a recipe classfile"), "path", path)
	}
	r := base.Recipe()
	if err := r.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return r, nil
}

// load builds and loads a XGo file, returning an initialized interpreter.
func load(ctx *ixgo.Context, path string, content []byte) (*ixgo.Interp, error) {
	source, err := xgobuild.BuildFile(ctx, path, content)
	if err != nil {
		return nil, err
	}
	pkgs, err := ctx.LoadFile("main.go", source)
	if err != nil {
		return nil, err
	}
	interp, err := ctx.NewInterp(pkgs)
	if err != nil {
		return nil, err
	}
	if err = interp.RunInit(); err != nil {
		return nil, err
	}
	return interp, nil
}

// newStructElem looks up the struct type by name, instantiates it and
// executes its Main method.
func newStructElem(interp *ixgo.Interp, structName string) (reflect.Value, error) {
	typ, ok := interp.GetType(structName)
	if !ok {
		return reflect.Value{}, zerr.With(zerr.Wrap(ErrInvalidScript, "struct name not found"), "struct", structName)
	}
	val := reflect.New(typ)
	main, ok := val.Interface().(classfileMain)
	if !ok {
		return reflect.Value{}, zerr.With(zerr.Wrap(ErrInvalidScript, "struct has no Main"), "struct", structName)
	}
	if err := runMain(main); err != nil {
		return reflect.Value{}, err
	}
	return val.Elem(), nil
}

func runMain(main classfileMain) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = zerr.Wrap(ErrInvalidScript, fmt.Sprint(r))
		}
	}()
	main.Main()
	return nil
}

// Identity reads the package metadata of a recipe script by parsing it,
// without running it.
func Identity(path string) (id recipe.Identity, err error) {
	fset := token.NewFileSet()
	f, err := parser.ParseEntry(fset, path, nil, parser.Config{
		ClassKind: xgobuild.ClassKind,
	})
	if err != nil {
		return id, zerr.With(zerr.Wrap(ErrInvalidScript, err.Error()), "path", path)
	}
	fields := map[string]*string{
		"name":        &id.Name,
		"version":     &id.Version,
		"license":     &id.License,
		"author":      &id.Author,
		"url":         &id.URL,
		"description": &id.Description,
	}
	ast.Inspect(f, func(n ast.Node) bool {
		c, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		fn, ok := c.Fun.(*ast.Ident)
		if !ok {
			return true
		}
		if dst, ok := fields[fn.Name]; ok && *dst == "" {
			*dst = stringArg(c)
		}
		return true
	})
	if id.Name == "" {
		return id, zerr.With(zerr.Wrap(ErrInvalidScript, "name is not declared"), "path", path)
	}
	return id, nil
}

// stringArg returns the first argument of c when it is a string literal.
func stringArg(c *ast.CallExpr) string {
	if len(c.Args) == 0 {
		return ""
	}
	lit, ok := c.Args[0].(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return ""
	}
	return strings.Trim(strings.Trim(lit.Value, `"`), "`")
}
