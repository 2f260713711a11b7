/*
Package disc reads and writes the System ID of a Saturn disc image. Images
may be raw sector dumps or a ZIP archive containing one.
*/
package disc

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/saturnid/saturn"
	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
)

// PreambleSize is the number of bytes of sync pattern, address and mode
// preceding the System ID in the first sector
const PreambleSize int64 = 16

// ErrUnsupportedFormat is returned for archives without a usable image or
// when trying to patch an archive
var ErrUnsupportedFormat = errors.New("disc: unsupported format")

var extensions = map[string]struct{}{
	".bin": {},
	".img": {},
	".iso": {},
}

// Image describes where a System ID was read from
type Image struct {
	Path     string
	MIME     string
	Entry    string
	SystemID saturn.SystemID
}

func detect(f afero.File) (*mimetype.MIME, error) {
	mime, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	return mime, nil
}

func findImage(files []*zip.File) *zip.File {
	var first *zip.File
	for _, f := range files {
		if f.FileInfo().IsDir() {
			continue
		}
		if _, ok := extensions[strings.ToLower(filepath.Ext(f.Name))]; ok {
			return f
		}
		if first == nil {
			first = f
		}
	}
	return first
}

func read(r io.Reader) (saturn.SystemID, error) {
	if _, err := io.CopyN(io.Discard, r, PreambleSize); err != nil {
		if err == io.EOF {
			return saturn.SystemID{}, fmt.Errorf("%w: missing %d byte preamble", saturn.ErrInputTooSmall, PreambleSize)
		}
		return saturn.SystemID{}, err
	}

	var b [saturn.Size]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return saturn.SystemID{}, fmt.Errorf("%w: need %#x bytes after the preamble", saturn.ErrInputTooSmall, saturn.Size)
		}
		return saturn.SystemID{}, err
	}

	return saturn.Decode(b), nil
}

// Open reads the System ID from the image at path
func Open(fs afero.Fs, path string) (*Image, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mime, err := detect(f)
	if err != nil {
		return nil, err
	}

	i := &Image{
		Path: path,
		MIME: mime.String(),
	}

	switch mime.Extension() {
	case ".zip":
		info, err := f.Stat()
		if err != nil {
			return nil, err
		}

		zr, err := zip.NewReader(f, info.Size())
		if err != nil {
			return nil, err
		}

		zf := findImage(zr.File)
		if zf == nil {
			return nil, ErrUnsupportedFormat
		}
		i.Entry = zf.Name

		rc, err := zf.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()

		if i.SystemID, err = read(rc); err != nil {
			return nil, err
		}
	default:
		if i.SystemID, err = read(f); err != nil {
			return nil, err
		}
	}

	return i, nil
}

// ReadSystemID returns the System ID of the image at path
func ReadSystemID(fs afero.Fs, path string) (saturn.SystemID, error) {
	i, err := Open(fs, path)
	if err != nil {
		return saturn.SystemID{}, err
	}
	return i.SystemID, nil
}

// WriteSystemID overwrites the System ID of the raw image at path
func WriteSystemID(fs afero.Fs, path string, id saturn.SystemID) (err error) {
	f, err := fs.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	mime, err := detect(f)
	if err != nil {
		return err
	}

	if mime.Extension() == ".zip" {
		return ErrUnsupportedFormat
	}

	info, err := f.Stat()
	if err != nil {
		return err
	}

	if info.Size() < PreambleSize+int64(saturn.Size) {
		return saturn.ErrInputTooSmall
	}

	b, err := id.MarshalBinary()
	if err != nil {
		return err
	}

	_, err = f.WriteAt(b, PreambleSize)

	return err
}
