package fs

import "path/filepath"

// Layout locates the parts of a docset bundle:
//
//	Name.docset/Contents/Info.plist
//	Name.docset/Contents/Resources/docSet.dsidx
//	Name.docset/Contents/Resources/Documents/
type Layout struct {
	Root string
}

// NewLayout returns the layout of the bundle at root.
func NewLayout(root string) Layout {
	return Layout{Root: root}
}

// Contents returns the Contents directory.
func (l Layout) Contents() string {
	return filepath.Join(l.Root, "Contents")
}

// Resources returns the Resources directory.
func (l Layout) Resources() string {
	return filepath.Join(l.Contents(), "Resources")
}

// Documents returns the directory holding the annotated pages.
func (l Layout) Documents() string {
	return filepath.Join(l.Resources(), "Documents")
}

// IndexPath returns the search index database path.
func (l Layout) IndexPath() string {
	return filepath.Join(l.Resources(), "docSet.dsidx")
}

// PlistPath returns the Info.plist path.
func (l Layout) PlistPath() string {
	return filepath.Join(l.Contents(), "Info.plist")
}
