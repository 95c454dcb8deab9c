package photostore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/kcyeo92/Workshop-Manager/internal/core/domain"
	"github.com/kcyeo92/Workshop-Manager/internal/core/ports"
)

// LocalStore keeps task photos on a filesystem, standing in for the external
// drive the workshop uses in production. Layout mirrors the drive structure:
// a YYYY/MM folder per upload month, one folder per customer_plate key, and a
// small index file per photo so listings survive renames.
type LocalStore struct {
	fs      afero.Fs
	root    string
	baseURL string
	now     func() time.Time
}

var _ ports.PhotoStore = (*LocalStore)(nil)

type photoIndex struct {
	FileID   string `json:"fileId"`
	FileName string `json:"fileName"`
	Path     string `json:"path"`
}

func NewLocalStore(fs afero.Fs, root, baseURL string) *LocalStore {
	return &LocalStore{fs: fs, root: root, baseURL: strings.TrimRight(baseURL, "/"), now: time.Now}
}

func (s *LocalStore) Upload(ctx context.Context, files []ports.PhotoUpload, customer, plate string) ([]domain.Photo, error) {
	folder := path.Join(s.root, s.now().Format("2006"), s.now().Format("01"), FolderKey(customer, plate))
	if err := s.fs.MkdirAll(folder, 0o755); err != nil {
		return nil, err
	}

	photos := make([]domain.Photo, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fileID := uuid.NewString()
		filePath := path.Join(folder, fileID+path.Ext(file.FileName))
		if err := afero.WriteFile(s.fs, filePath, file.Content, 0o644); err != nil {
			return nil, err
		}

		index, err := json.Marshal(photoIndex{FileID: fileID, FileName: file.FileName, Path: filePath})
		if err != nil {
			return nil, err
		}
		if err := afero.WriteFile(s.fs, path.Join(folder, fileID+".json"), index, 0o644); err != nil {
			return nil, err
		}

		photos = append(photos, domain.Photo{
			FileID:   fileID,
			FileName: file.FileName,
			URL:      s.photoURL(fileID),
		})
	}
	return photos, nil
}

func (s *LocalStore) List(ctx context.Context, customer, plate string) ([]domain.Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	exists, err := afero.DirExists(s.fs, s.root)
	if err != nil {
		return nil, err
	}
	if !exists {
		return []domain.Photo{}, nil
	}
	key := FolderKey(customer, plate)

	var photos []domain.Photo
	err = afero.Walk(s.fs, s.root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(p, ".json") {
			return nil
		}
		if path.Base(path.Dir(p)) != key {
			return nil
		}

		content, err := afero.ReadFile(s.fs, p)
		if err != nil {
			return err
		}
		var index photoIndex
		if err := json.Unmarshal(content, &index); err != nil {
			return fmt.Errorf("corrupt photo index %s: %w", p, err)
		}
		photos = append(photos, domain.Photo{
			FileID:   index.FileID,
			FileName: index.FileName,
			URL:      s.photoURL(index.FileID),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(photos, func(i, j int) bool { return photos[i].FileName < photos[j].FileName })
	return photos, nil
}

// Open resolves a file id to the stored photo bytes via its index file.
func (s *LocalStore) Open(ctx context.Context, fileID string) (string, []byte, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}
	exists, err := afero.DirExists(s.fs, s.root)
	if err != nil {
		return "", nil, err
	}
	if !exists {
		return "", nil, domain.ErrPhotoNotFound
	}

	var found *photoIndex
	err = afero.Walk(s.fs, s.root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if found != nil || info.IsDir() || path.Base(p) != fileID+".json" {
			return nil
		}

		content, err := afero.ReadFile(s.fs, p)
		if err != nil {
			return err
		}
		var index photoIndex
		if err := json.Unmarshal(content, &index); err != nil {
			return fmt.Errorf("corrupt photo index %s: %w", p, err)
		}
		found = &index
		return nil
	})
	if err != nil {
		return "", nil, err
	}
	if found == nil {
		return "", nil, domain.ErrPhotoNotFound
	}

	content, err := afero.ReadFile(s.fs, found.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, domain.ErrPhotoNotFound
		}
		return "", nil, err
	}
	return found.FileName, content, nil
}

func (s *LocalStore) photoURL(fileID string) string {
	return s.baseURL + "/api/photos/" + fileID
}

// FolderKey derives the per-task storage folder from the customer name and
// vehicle plate: joined with an underscore, every non-alphanumeric character
// replaced by one.
func FolderKey(customer, plate string) string {
	return sanitize(customer) + "_" + sanitize(plate)
}

func sanitize(value string) string {
	var b strings.Builder
	for _, r := range value {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
