package promotions

import (
	"encoding/json"
	"os"
)

type PromotionStorage interface {
	GetPromotions() ([]Promotion, error)
}

// DiskPromotionStorage reads promotions from a JSON file maintained by the
// commerce platform admin.
type DiskPromotionStorage struct {
	Path string
}

type PromotionFile struct {
	Promotions []Promotion `json:"promotions"`
}

func (s *DiskPromotionStorage) readFile(path string, dest any) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return json.NewDecoder(file).Decode(dest)
}

func (s *DiskPromotionStorage) GetPromotions() ([]Promotion, error) {
	file := PromotionFile{}
	err := s.readFile(s.Path, &file)
	if err != nil {
		return nil, err
	}
	return file.Promotions, nil
}

// StaticPromotionStorage serves a fixed list.
type StaticPromotionStorage []Promotion

func (s StaticPromotionStorage) GetPromotions() ([]Promotion, error) {
	return s, nil
}
