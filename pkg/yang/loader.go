// Copyright 2024 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package yang

// This file implements the module loader.  The loader owns all file I/O:
// it parses the entrypoint module, drains the includes the walker queued
// (merging each submodule's body and novel revisions into the owning
// module), then works through imports breadth-first, collecting each
// imported module's reference tables and prefix binding.  Finally it hands
// the merged module to the resolver.
//
// A module or submodule named M is looked up as M.yang in the directory of
// the file that referenced it.  There is no search path.

import (
	"os"
	"path/filepath"

	log "github.com/golang/glog"
)

// readFile reads the bytes of a .yang file.  It is a variable so tests can
// load from in-memory file sets.
var readFile = os.ReadFile

type loader struct {
	// imported maps a module name to its reference tables once its file has
	// been walked.
	imported map[string]*ReferenceNodes

	// prefixToModule maps each import prefix to the module it names.  The
	// binding always comes from the importing module's import statement, so
	// one module may be known under several prefixes.
	prefixToModule map[string]string

	// included tracks submodules already merged, so diamond or cyclic
	// include graphs terminate.
	included map[string]bool
}

func newLoader() *loader {
	return &loader{
		imported:       map[string]*ReferenceNodes{},
		prefixToModule: map[string]string{},
		included:       map[string]bool{},
	}
}

// ParseFile parses the YANG module at path, loads every transitively
// included submodule and imported module from the directory of the file
// that references them, and resolves the uses references in the returned
// module; a uses whose grouping cannot be found is left in place.  The
// entrypoint must contain a module; a submodule entrypoint fails with
// ErrInvalidEntrypoint.
func ParseFile(path string) (*Module, error) {
	return newLoader().loadFile(path)
}

func (l *loader) loadFile(path string) (*Module, error) {
	w := newWalker()
	file, err := l.parse(w, path)
	if err != nil {
		return nil, err
	}

	module, ok := file.(*Module)
	if !ok {
		return nil, ErrInvalidEntrypoint
	}
	log.V(1).Infof("loaded module %s from %s", module.Name, path)

	// Merge every included submodule into the main module.  Includes are
	// walked with the main walker so their reference targets land in the
	// main module's tables.
	if err := l.processIncludes(path, module, w); err != nil {
		return nil, err
	}

	// Load imported modules; each gets a fresh walker and its own tables.
	if err := l.processImports(path, module.Name, w.takeImports()); err != nil {
		return nil, err
	}

	r := &resolver{
		refs:           w.refs,
		imported:       l.imported,
		prefixToModule: l.prefixToModule,
	}
	r.resolve(module)

	return module, nil
}

// parse reads and walks a single file with w.
func (l *loader) parse(w *walker, path string) (YangFile, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	ss, err := Parse(string(data), path)
	if err != nil {
		return nil, err
	}
	return w.walk(ss)
}

// processIncludes drains the walker's pending includes, recursively: a
// submodule may include further submodules, which must be merged before it
// is.  Revisiting an already-merged submodule is tolerated and skipped.
func (l *loader) processIncludes(basePath string, module *Module, w *walker) error {
	for _, inc := range w.takeIncludes() {
		if l.included[inc.Module] {
			continue
		}
		l.included[inc.Module] = true

		subPath := filepath.Join(filepath.Dir(basePath), inc.Module+".yang")
		log.V(2).Infof("including %s from %s", inc.Module, subPath)
		file, err := l.parse(w, subPath)
		if err != nil {
			return err
		}
		sub, ok := file.(*Submodule)
		if !ok {
			return &IncludeError{Path: subPath}
		}

		// Nested includes first, then merge this submodule.
		if err := l.processIncludes(subPath, module, w); err != nil {
			return err
		}
		mergeSubmodule(module, sub)
	}
	return nil
}

// mergeSubmodule appends the submodule's body to the owning module and
// adds any revision whose date the module does not already record.
func mergeSubmodule(module *Module, sub *Submodule) {
	module.Body = append(module.Body, sub.Body...)
	for _, rev := range sub.Revisions {
		known := false
		for _, r := range module.Revisions {
			if r.Date == rev.Date {
				known = true
				break
			}
		}
		if !known {
			module.Revisions = append(module.Revisions, rev)
		}
	}
}

// processImports works through a FIFO worklist of import statements.  Each
// module's file is read and walked at most once; later imports of the same
// module only rebind their prefix.
func (l *loader) processImports(basePath, currentModule string, pending []*Import) error {
	processed := map[string]bool{currentModule: true}

	for len(pending) > 0 {
		imp := pending[0]
		pending = pending[1:]

		if _, ok := l.imported[imp.Module]; ok || processed[imp.Module] {
			l.prefixToModule[imp.Prefix] = imp.Module
			continue
		}
		processed[imp.Module] = true

		modPath := filepath.Join(filepath.Dir(basePath), imp.Module+".yang")
		log.V(2).Infof("importing %s as %s from %s", imp.Module, imp.Prefix, modPath)

		w := newWalker()
		file, err := l.parse(w, modPath)
		if err != nil {
			return err
		}
		module, ok := file.(*Module)
		if !ok {
			return &ImportError{Path: modPath}
		}

		// Merge the imported module's own submodules so their groupings are
		// visible through its prefix.
		if err := l.processIncludes(modPath, module, w); err != nil {
			return err
		}

		l.prefixToModule[imp.Prefix] = imp.Module
		l.imported[imp.Module] = w.refs
		pending = append(pending, w.takeImports()...)
	}
	return nil
}
