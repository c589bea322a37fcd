package pptx

import (
	"archive/zip"
	"encoding/base64"
	"io"
	"path"
	"strings"

	"github.com/gnemet/slidextract/internal/model"
)

// extractMedia base64-encodes every file under ppt/media/, classifying
// each by extension per spec.md §4.B.
func extractMedia(zr *zip.Reader) []model.Media {
	var media []model.Media
	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, "ppt/media/") || f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			continue
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			continue
		}

		ext := strings.ToLower(strings.TrimPrefix(path.Ext(f.Name), "."))
		m := model.Media{
			Name:      path.Base(f.Name),
			Type:      model.MediaTypeForExtension(ext),
			Size:      len(data),
			Extension: ext,
		}
		if len(data) > 0 {
			m.Data = base64.StdEncoding.EncodeToString(data)
		}
		media = append(media, m)
	}
	return media
}
