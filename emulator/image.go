package emulator

import (
	"errors"
	"io"
	"os"

	"github.com/sis16/svm/cpu"
)

// ReadImage reads a ROM image, which must be exactly cpu.MEMORY_SIZE bytes.
func ReadImage(r io.Reader) (image []byte, err error) {
	// Read one byte past the size to detect oversized images.
	image, err = io.ReadAll(io.LimitReader(r, cpu.MEMORY_SIZE+1))
	if err != nil {
		image = nil
		return
	}

	if len(image) != cpu.MEMORY_SIZE {
		size := len(image)
		image = nil
		err = errors.Join(cpu.ErrInvalidImageSize, cpu.ErrImageSize(size))
		return
	}

	return
}

// LoadImage reads the ROM image at path.
func LoadImage(path string) (image []byte, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	image, err = ReadImage(inf)
	if err != nil {
		err = &ErrImage{Path: path, Err: err}
	}
	return
}

// ErrImage locates an image load failure.
type ErrImage struct {
	Path string
	Err  error
}

func (err *ErrImage) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrImage) Unwrap() error {
	return err.Err
}
