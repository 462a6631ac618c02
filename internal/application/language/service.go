package language

import (
	"context"

	"github.com/go-translator/internal/domain"
	"github.com/go-translator/internal/pkg/flag"
)

// Service serves the language picker: the catalog with a flag per entry.
type Service interface {
	List(ctx context.Context) ([]domain.Language, error)
	Get(ctx context.Context, code string) (*domain.Language, error)
}

type service struct {
	flags flag.Mapper
}

func NewService(flags flag.Mapper) Service {
	return &service{flags: flags}
}

func (s *service) List(_ context.Context) ([]domain.Language, error) {
	langs := domain.Languages()
	for i := range langs {
		langs[i].Flag = s.flags.Map(langs[i].CountryCode)
	}
	return langs, nil
}

func (s *service) Get(_ context.Context, code string) (*domain.Language, error) {
	l, err := domain.LanguageByCode(code)
	if err != nil {
		return nil, err
	}
	l.Flag = s.flags.Map(l.CountryCode)
	return &l, nil
}
