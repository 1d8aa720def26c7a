package memoryfs

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/rwx-research/pathfs/internal/errors"
	"github.com/rwx-research/pathfs/internal/path"
)

// LoadFixture adds the roots, folders and files described by a YAML document.
//
//	/:
//	  src:
//	    main.go: "package main"
//	  empty:
//	C:\:
//	  notes.txt: ""
//
// Top-level keys are root paths. Below them, mappings and nulls are folders and strings
// are files holding that content.
func (mfs *MemoryFS) LoadFixture(contents []byte) error {
	var roots yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(contents, &roots, yaml.UseOrderedMap()); err != nil {
		return errors.Wrap(err, "unable to parse fixture")
	}

	for _, item := range roots {
		rootPath := path.New(fmt.Sprint(item.Key))
		if rootPath.RootPathString() != rootPath.String() {
			return errors.Wrapf(errors.ErrInvalidPath, "fixture key %q is not a root", rootPath)
		}

		root := mfs.CreateMockRoot(rootPath)
		if err := loadChildren(root, item.Value); err != nil {
			return err
		}
	}

	return nil
}

func loadChildren(parent Container, value any) error {
	if value == nil {
		return nil
	}

	children, ok := value.(yaml.MapSlice)
	if !ok {
		return errors.Errorf("expected a mapping of children under %q", parent.Path())
	}

	for _, child := range children {
		name := fmt.Sprint(child.Key)
		if !validName(name) {
			return errors.Wrapf(errors.ErrInvalidPath, "invalid name %q under %q", name, parent.Path())
		}

		switch childValue := child.Value.(type) {
		case string:
			parent.CreateFile(name).SetContentsAsString(childValue)
		case nil, yaml.MapSlice:
			if err := loadChildren(parent.CreateFolder(name), childValue); err != nil {
				return err
			}
		default:
			return errors.Errorf("unsupported fixture value for %q: %T", parent.Path().Add(name), child.Value)
		}
	}

	return nil
}
