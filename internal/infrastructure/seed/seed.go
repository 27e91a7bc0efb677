// Package seed loads the member types a fresh store starts with.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wichananm65/social-backend/internal/domain/entity"
	"github.com/wichananm65/social-backend/internal/domain/repository"
)

//go:embed member_types.yaml
var defaultMemberTypes []byte

// File is the on-disk layout of a seed file.
type File struct {
	MemberTypes []entity.MemberType `yaml:"memberTypes"`
}

// Parse decodes and checks a seed document.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse seed: %w", err)
	}
	seen := make(map[string]struct{}, len(f.MemberTypes))
	for i, mt := range f.MemberTypes {
		if mt.ID == "" {
			return File{}, fmt.Errorf("member type #%d: id is required", i)
		}
		if mt.Discount < 0 || mt.MonthPostsLimit < 0 {
			return File{}, fmt.Errorf("member type %q: discount and monthPostsLimit must not be negative", mt.ID)
		}
		if _, dup := seen[mt.ID]; dup {
			return File{}, fmt.Errorf("member type %q listed twice", mt.ID)
		}
		seen[mt.ID] = struct{}{}
	}
	return f, nil
}

// Load reads the seed file at path, or the built-in defaults when path is
// empty.
func Load(path string) (File, error) {
	if path == "" {
		return Parse(defaultMemberTypes)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read seed %s: %w", path, err)
	}
	return Parse(data)
}

// Seeder inserts seed member types into a store.
type Seeder struct {
	memberTypes repository.MemberTypeRepository
}

func NewSeeder(memberTypes repository.MemberTypeRepository) *Seeder {
	return &Seeder{memberTypes: memberTypes}
}

// Result reports what the seeder did.
type Result struct {
	Added   []string
	Skipped []string // already present, left untouched
	Total   int
}

// Seed is idempotent: member types that already exist are skipped, never
// overwritten.
func (s *Seeder) Seed(ctx context.Context, f File) (*Result, error) {
	result := &Result{Total: len(f.MemberTypes)}
	for _, mt := range f.MemberTypes {
		_, err := s.memberTypes.Create(ctx, mt)
		switch {
		case err == nil:
			result.Added = append(result.Added, mt.ID)
		case errors.Is(err, repository.ErrConflict):
			result.Skipped = append(result.Skipped, mt.ID)
		default:
			return nil, fmt.Errorf("seeding member type %s: %w", mt.ID, err)
		}
	}
	return result, nil
}
