package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/baolive/camping-api/internal/domain"
)

// FamilyRow is one line of the per-person families export. A family
// with no members still gets a single row with the person fields blank.
type FamilyRow struct {
	BookingRef  string `json:"booking_ref"`
	CampingType string `json:"camping_type"`
	Nights      string `json:"nights"`
	Name        string `json:"name"`
	PersonType  string `json:"person_type"`
	Class       string `json:"class"`
}

type ExportService struct {
	familyRepo   FamilyRepository
	activityRepo ActivityRepository
}

func NewExportService(familyRepo FamilyRepository, activityRepo ActivityRepository) *ExportService {
	return &ExportService{
		familyRepo:   familyRepo,
		activityRepo: activityRepo,
	}
}

// Families flattens every registration into one row per person, ordered
// by booking ref, then children before adults, then name.
func (s *ExportService) Families(ctx context.Context) ([]FamilyRow, error) {
	families, err := s.familyRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.familyRepo.ListAll -> %w", err)
	}

	rows := []FamilyRow{}
	for _, family := range families {
		nights := strings.Join(family.Nights, ", ")

		if len(family.Members) == 0 {
			rows = append(rows, FamilyRow{
				BookingRef:  family.BookingRef,
				CampingType: family.CampingType,
				Nights:      nights,
			})
			continue
		}

		for _, member := range family.Members {
			row := FamilyRow{
				BookingRef:  family.BookingRef,
				CampingType: family.CampingType,
				Nights:      nights,
				Name:        member.Name,
				PersonType:  "Adult",
			}
			if member.IsChild {
				row.PersonType = "Child"
			}
			if member.Class != nil {
				row.Class = *member.Class
			}
			rows = append(rows, row)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].BookingRef != rows[j].BookingRef {
			return rows[i].BookingRef < rows[j].BookingRef
		}
		if rows[i].PersonType != rows[j].PersonType {
			return rows[i].PersonType == "Child"
		}
		return rows[i].Name < rows[j].Name
	})

	return rows, nil
}

// Activities is the admin's full catalogue dump, unavailable entries
// included.
func (s *ExportService) Activities(ctx context.Context) ([]domain.Activity, error) {
	activities, err := s.activityRepo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("s.activityRepo.List -> %w", err)
	}

	return activities, nil
}
