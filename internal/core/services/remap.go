package services

import (
	"github.com/custodia-labs/cvsync/internal/core/domain"
	"github.com/custodia-labs/cvsync/internal/logger"
)

// CategoryRemapper assigns skill categories to destination buckets.
type CategoryRemapper struct {
	table    map[string]string
	fallback string
}

// NewCategoryRemapper creates a remapper over table. Categories absent from
// table land in fallback; an empty fallback means domain.DefaultBucket.
func NewCategoryRemapper(table map[string]string, fallback string) *CategoryRemapper {
	if fallback == "" {
		fallback = domain.DefaultBucket
	}
	copied := make(map[string]string, len(table))
	for k, v := range table {
		copied[k] = v
	}
	return &CategoryRemapper{table: copied, fallback: fallback}
}

// Bucket returns the destination label for a source category.
func (r *CategoryRemapper) Bucket(category string) string {
	if label, ok := r.table[category]; ok {
		return label
	}
	logger.Debug("skill category %q not mapped, using %q", category, r.fallback)
	return r.fallback
}

// Group buckets records by destination label. Buckets are ordered by
// first appearance and values keep source order, duplicates included.
func (r *CategoryRemapper) Group(records []domain.SkillRecord) []domain.Bucket {
	var buckets []domain.Bucket
	index := make(map[string]int)

	for _, rec := range records {
		label := r.Bucket(rec.Category)
		i, ok := index[label]
		if !ok {
			i = len(buckets)
			index[label] = i
			buckets = append(buckets, domain.Bucket{Label: label})
		}
		buckets[i].Values = append(buckets[i].Values, rec.Skills)
	}

	return buckets
}
