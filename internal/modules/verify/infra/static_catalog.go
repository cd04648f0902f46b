package infra

import (
	"context"

	"prodcheck/internal/modules/verify/domain"
)

type staticCatalog struct {
	lists domain.CodeLists
}

// NewStaticCatalog serves lists taken from configuration.
func NewStaticCatalog(lists domain.CodeLists) domain.CodeCatalog {
	cp := domain.CodeLists{
		Fresh:   append([]string(nil), lists.Fresh...),
		Expired: append([]string(nil), lists.Expired...),
	}
	return &staticCatalog{lists: cp}
}

func (c *staticCatalog) Lists(_ context.Context) (domain.CodeLists, error) {
	return domain.CodeLists{
		Fresh:   append([]string(nil), c.lists.Fresh...),
		Expired: append([]string(nil), c.lists.Expired...),
	}, nil
}
