package controllers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"booking/pkg/media"

	"github.com/gin-gonic/gin"
)

// roomFiles reads the avatar and gallery parts of a multipart request.
// A request that is not multipart carries no files.
func roomFiles(c *gin.Context) (*media.File, []media.File, error) {
	form, err := c.MultipartForm()
	if errors.Is(err, http.ErrNotMultipart) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	var avatar *media.File
	if fhs := form.File["avatar"]; len(fhs) > 0 {
		f, err := readFile(fhs[0])
		if err != nil {
			return nil, nil, err
		}
		avatar = &f
	}

	gallery := make([]media.File, 0, len(form.File["files"]))
	for _, fh := range form.File["files"] {
		f, err := readFile(fh)
		if err != nil {
			return nil, nil, err
		}
		gallery = append(gallery, f)
	}
	return avatar, gallery, nil
}

func readFile(fh *multipart.FileHeader) (media.File, error) {
	src, err := fh.Open()
	if err != nil {
		return media.File{}, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return media.File{}, fmt.Errorf("read %s: %w", fh.Filename, err)
	}
	return media.File{
		Name:     fh.Filename,
		MimeType: fh.Header.Get("Content-Type"),
		Data:     data,
	}, nil
}
