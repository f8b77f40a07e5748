package gart

import (
	"fmt"
	"os"
	"path/filepath"
)

const tmpFolder = "./"

// PNGWriter is anything that can save itself as a PNG.
// Renderers that can also write vector files implement SVGWriter or PDFWriter.
type PNGWriter interface {
	WritePNG(fname string) error
}

type SVGWriter interface {
	WriteSVG(fname string) error
}

type PDFWriter interface {
	WritePDF(fname string) error
}

// SafeWrite noisily saves to tmp file and then moves
func (s Seed) SafeWrite(w PNGWriter, prefix, ext string) error {
	fname := s.GetFilename(prefix, ext)
	if err := SafeWriteFile(w, fname); err != nil {
		fmt.Printf("Problem saving %s: %v\n", fname, err)
		return err
	}
	fmt.Printf("Saved to %s\n", fname)
	return nil
}

// SafeWriteFile writes to a temp file then renames atomically
func SafeWriteFile(w PNGWriter, fname string) error {
	if err := MaybeCreateDir(filepath.Dir(fname)); err != nil {
		return err
	}

	ext := filepath.Ext(fname)
	tmpfile, err := os.CreateTemp(tmpDir(fname), "gart.*"+ext)
	if err != nil {
		return err
	}
	tmpfile.Close()
	if err := writeAs(w, tmpfile.Name(), ext); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}
	// Note: the folders here need to be on the same drive
	if err := os.Rename(tmpfile.Name(), fname); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}

	return os.Chmod(fname, 0664)
}

func writeAs(w PNGWriter, fname, ext string) error {
	switch ext {
	case ".png":
		return w.WritePNG(fname)
	case ".svg":
		if sw, ok := w.(SVGWriter); ok {
			return sw.WriteSVG(fname)
		}
	case ".pdf":
		if pw, ok := w.(PDFWriter); ok {
			return pw.WritePDF(fname)
		}
	}
	return fmt.Errorf("unsupported file format %s", ext)
}

// tmpDir keeps the temp file next to the destination so the rename stays on one drive
func tmpDir(fname string) string {
	if dir := filepath.Dir(fname); dir != "." {
		return dir
	}
	return tmpFolder
}

// MaybeCreateDir creates dir and its parents if missing
func MaybeCreateDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0775)
}
