// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ixgo registers the recipe classfile and the packages recipe
// scripts can use with the ixgo interpreter.
package ixgo

import (
	"github.com/goplus/ixgo/xgobuild"
	"github.com/goplus/mod/modfile"

	_ "github.com/goplus/llar-getopt/internal/ixgo/pkg/github.com/goplus/llar-getopt/pkgs/buildsys"
	_ "github.com/goplus/llar-getopt/internal/ixgo/pkg/github.com/goplus/llar-getopt/pkgs/buildsys/cmake"
	_ "github.com/goplus/llar-getopt/internal/ixgo/pkg/github.com/goplus/llar-getopt/pkgs/mod/module"
	_ "github.com/goplus/llar-getopt/internal/ixgo/pkg/github.com/goplus/llar-getopt/recipe"
	_ "github.com/goplus/llar-getopt/internal/ixgo/pkg/github.com/qiniu/x/gsh"
)

// RecipeExt is the file suffix of recipe scripts.
const RecipeExt = "_recipe.gox"

func init() {
	xgobuild.RegisterProject(&modfile.Project{
		Ext:   RecipeExt,
		Class: "RecipeF",
		PkgPaths: []string{
			"github.com/goplus/llar-getopt/recipe",
		},
		Import: []*modfile.Import{
			{
				Name: "cmake",
				Path: "github.com/goplus/llar-getopt/pkgs/buildsys/cmake",
			},
		},
	})
}
