// Package artifact reads and writes filter files: a small envelope
// naming the compression codec, wrapped around the filter's binary
// form.
package artifact

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"

	"github.com/bloomdict/bloomdict"
)

var (
	ErrBadArtifact  = errors.New("artifact: bad magic, not a filter artifact")
	ErrUnknownCodec = errors.New("artifact: unknown codec")
)

// Codec selects the compression applied to the filter payload.
type Codec uint8

const (
	None Codec = iota
	Gzip
	Snappy
	Xz
)

// DefaultCodec is used when the caller does not ask for a specific
// compression.
const DefaultCodec = Gzip

const (
	artifactMagic = "BDA1"
	headerLen     = len(artifactMagic) + 1
)

func (c Codec) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Snappy:
		return "snappy"
	case Xz:
		return "xz"
	}
	return fmt.Sprintf("codec(%d)", uint8(c))
}

// ParseCodec maps a codec name from a flag or config value to its
// Codec.
func ParseCodec(name string) (Codec, error) {
	switch name {
	case "none":
		return None, nil
	case "gzip":
		return Gzip, nil
	case "snappy":
		return Snappy, nil
	case "xz":
		return Xz, nil
	}
	return None, errors.Wrapf(ErrUnknownCodec, "%q", name)
}

// Write wraps the filter's serialized form in an artifact envelope and
// writes it to w.
func Write(w io.Writer, f *bloomdict.Filter, codec Codec) error {
	if codec > Xz {
		return ErrUnknownCodec
	}
	if _, err := w.Write(append([]byte(artifactMagic), byte(codec))); err != nil {
		return errors.Wrap(err, "write artifact header")
	}
	switch codec {
	case Gzip:
		zw, err := gzip.NewWriterLevel(w, gzip.BestCompression)
		if err != nil {
			return errors.Wrap(err, "open gzip stream")
		}
		if err := f.Save(zw); err != nil {
			zw.Close()
			return err
		}
		return errors.Wrap(zw.Close(), "close gzip stream")
	case Snappy:
		sw := snappy.NewBufferedWriter(w)
		if err := f.Save(sw); err != nil {
			sw.Close()
			return err
		}
		return errors.Wrap(sw.Close(), "close snappy stream")
	case Xz:
		xw, err := xz.NewWriter(w)
		if err != nil {
			return errors.Wrap(err, "open xz stream")
		}
		if err := f.Save(xw); err != nil {
			xw.Close()
			return err
		}
		return errors.Wrap(xw.Close(), "close xz stream")
	}
	return f.Save(w)
}

// Read restores a filter from an artifact envelope, detecting the codec
// from the header.
func Read(r io.Reader) (*bloomdict.Filter, Codec, error) {
	var header [headerLen]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, None, errors.Wrap(err, "read artifact header")
	}
	if string(header[:len(artifactMagic)]) != artifactMagic {
		return nil, None, ErrBadArtifact
	}
	codec := Codec(header[len(artifactMagic)])

	var payload io.Reader
	switch codec {
	case None:
		payload = r
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, codec, errors.Wrap(err, "open gzip stream")
		}
		defer zr.Close()
		payload = zr
	case Snappy:
		payload = snappy.NewReader(r)
	case Xz:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, codec, errors.Wrap(err, "open xz stream")
		}
		payload = xr
	default:
		return nil, codec, ErrUnknownCodec
	}

	f, err := bloomdict.Load(payload)
	if err != nil {
		return nil, codec, errors.Wrap(err, "decode filter payload")
	}
	return f, codec, nil
}

// WriteFile writes the filter to path as an artifact.
func WriteFile(path string, f *bloomdict.Filter, codec Codec) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create artifact")
	}
	if err := Write(file, f, codec); err != nil {
		file.Close()
		return err
	}
	return errors.Wrapf(file.Close(), "close %s", path)
}

// ReadFile restores a filter from the artifact at path.
func ReadFile(path string) (*bloomdict.Filter, Codec, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, None, errors.Wrap(err, "open artifact")
	}
	defer file.Close()
	return Read(file)
}
