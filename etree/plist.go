// Package etree writes docset property lists using the beevik/etree XML
// library.
package etree

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	docset "github.com/cypheon/ocaml-docset"
)

const plistDoctype = `DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd"`

// NewInfoPlist builds the Info.plist document describing a docset bundle.
func NewInfoPlist(b docset.Bundle) (*etree.Document, error) {
	if b.Name == "" {
		return nil, docset.Errorf(docset.EINVALID, "bundle name required")
	}
	if b.Identifier == "" {
		return nil, docset.Errorf(docset.EINVALID, "bundle identifier required")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective(plistDoctype)

	plist := doc.CreateElement("plist")
	plist.CreateAttr("version", "1.0")
	dict := plist.CreateElement("dict")

	addString(dict, "CFBundleIdentifier", b.Identifier)
	addString(dict, "CFBundleName", b.Name)
	if b.Platform != "" {
		addString(dict, "DocSetPlatformFamily", b.Platform)
	}
	dict.CreateElement("key").SetText("isDashDocset")
	dict.CreateElement("true")
	if b.IndexPage != "" {
		addString(dict, "dashIndexFilePath", b.IndexPage)
	}

	doc.Indent(2)
	return doc, nil
}

func addString(dict *etree.Element, key, value string) {
	dict.CreateElement("key").SetText(key)
	dict.CreateElement("string").SetText(value)
}

// WriteInfoPlist writes the Info.plist of a docset bundle to w.
func WriteInfoPlist(w io.Writer, b docset.Bundle) error {
	doc, err := NewInfoPlist(b)
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("writing Info.plist: %w", err)
	}
	return nil
}

// WriteInfoPlistFile writes the Info.plist of a docset bundle to path,
// creating parent directories as needed.
func WriteInfoPlistFile(path string, b docset.Bundle) error {
	doc, err := NewInfoPlist(b)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	if err := doc.WriteToFile(path); err != nil {
		return fmt.Errorf("writing Info.plist: %w", err)
	}
	return nil
}
