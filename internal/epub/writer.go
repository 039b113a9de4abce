package epub

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Mimetype is the exact content of the mimetype entry, the first file in a
// conformant EPUB container.
const Mimetype = "application/epub+zip"

const containerXML = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>
`

// Write stages the container layout for doc in a freshly created temporary
// directory and assembles the final archive at outputPath. The staging
// directory is removed on every return path.
//
// Each invocation stages under its own directory, so concurrent conversions
// do not interfere with each other.
func Write(doc Document, meta Metadata, outputPath string) error {
	stagingDir, err := os.MkdirTemp("", "html2epub-")
	if err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(stagingDir)

	if err := stage(stagingDir, doc, meta); err != nil {
		return err
	}
	return writeArchive(stagingDir, outputPath)
}

// stage lays out the mimetype marker, the container descriptor, and the OEBPS
// directory holding the four XML documents and the images subdirectory.
func stage(dir string, doc Document, meta Metadata) error {
	if err := os.WriteFile(filepath.Join(dir, "mimetype"), []byte(Mimetype), 0o644); err != nil {
		return fmt.Errorf("failed to write mimetype: %w", err)
	}

	metaInfDir := filepath.Join(dir, "META-INF")
	if err := os.MkdirAll(metaInfDir, 0o755); err != nil {
		return fmt.Errorf("failed to create META-INF: %w", err)
	}
	if err := os.WriteFile(filepath.Join(metaInfDir, "container.xml"), []byte(containerXML), 0o644); err != nil {
		return fmt.Errorf("failed to write container.xml: %w", err)
	}

	oebpsDir := filepath.Join(dir, "OEBPS")
	if err := os.MkdirAll(oebpsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create OEBPS: %w", err)
	}

	documents := map[string]string{
		"content.opf":   BuildOPF(meta, doc.Images),
		"content.xhtml": BuildContent(meta.Title, doc.Body),
		"toc.ncx":       BuildNCX(meta),
		"nav.xhtml":     BuildNav(meta.Title),
	}
	for name, content := range documents {
		if err := os.WriteFile(filepath.Join(oebpsDir, name), []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	if len(doc.Images) > 0 {
		imagesDir := filepath.Join(oebpsDir, "images")
		if err := os.MkdirAll(imagesDir, 0o755); err != nil {
			return fmt.Errorf("failed to create images directory: %w", err)
		}
		for _, img := range doc.Images {
			if err := os.WriteFile(filepath.Join(imagesDir, img.Filename), img.Data, 0o644); err != nil {
				return fmt.Errorf("failed to write image %s: %w", img.Filename, err)
			}
		}
	}

	return nil
}

// writeArchive produces the zip archive in two passes: first the mimetype
// entry, stored without compression, then every other staged file deflated.
// Reading systems require the stored mimetype to be the first entry; breaking
// that rule yields an archive most readers reject.
func writeArchive(stagingDir, outputPath string) (err error) {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	zw := zip.NewWriter(f)

	mw, err := zw.CreateHeader(&zip.FileHeader{
		Name:   "mimetype",
		Method: zip.Store,
	})
	if err != nil {
		return fmt.Errorf("failed to create mimetype entry: %w", err)
	}
	if _, err := mw.Write([]byte(Mimetype)); err != nil {
		return fmt.Errorf("failed to write mimetype entry: %w", err)
	}

	walkErr := filepath.WalkDir(stagingDir, func(path string, d fs.DirEntry, werr error) error {
		if werr != nil {
			return werr
		}
		if d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(stagingDir, path)
		if relErr != nil {
			return relErr
		}
		arcname := filepath.ToSlash(rel)
		if arcname == "mimetype" {
			return nil
		}

		w, zerr := zw.CreateHeader(&zip.FileHeader{
			Name:   arcname,
			Method: zip.Deflate,
		})
		if zerr != nil {
			return zerr
		}
		src, oerr := os.Open(path)
		if oerr != nil {
			return oerr
		}
		defer src.Close()
		_, cerr := io.Copy(w, src)
		return cerr
	})
	if walkErr != nil {
		zw.Close()
		return fmt.Errorf("failed to add staged files: %w", walkErr)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}
