package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/baolive/camping-api/internal/domain"
)

var errNoSchoolChild = errors.New("at least one child in class Baobab or Olive is required")

type FamilyMemberRequest struct {
	Name    string  `json:"name"`
	IsChild bool    `json:"is_child"`
	Class   *string `json:"class"`
}

type RegisterFamilyRequest struct {
	BookingRef  string                `json:"booking_ref"`
	CampingType string                `json:"camping_type"`
	Nights      []string              `json:"nights"`
	Members     []FamilyMemberRequest `json:"members"`
}

func (req *RegisterFamilyRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.BookingRef, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.CampingType, validation.Required, validation.In(domain.CampingTent, domain.CampingCampervan)),
		validation.Field(&req.Nights, validation.Required, validation.Length(1, 0)),
		validation.Field(&req.Members, validation.Required, validation.Length(1, 0), validation.By(requireSchoolChild)),
	)
	if err != nil {
		return err
	}

	for _, member := range req.Members {
		if err := member.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func (m *FamilyMemberRequest) Validate() error {
	return validation.ValidateStruct(
		m,
		validation.Field(&m.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&m.Class, validation.In(domain.ClassBaobab, domain.ClassOlive, domain.ClassOther)),
	)
}

// requireSchoolChild rejects registrations with no child in one of the
// school's classes. Guests and siblings alone cannot book a family in.
func requireSchoolChild(value interface{}) error {
	members, ok := value.([]FamilyMemberRequest)
	if !ok {
		return errNoSchoolChild
	}

	for _, member := range members {
		if !member.IsChild || member.Class == nil {
			continue
		}
		if *member.Class == domain.ClassBaobab || *member.Class == domain.ClassOlive {
			return nil
		}
	}

	return errNoSchoolChild
}

func (req *RegisterFamilyRequest) ToDomain() domain.Family {
	members := make([]domain.Member, len(req.Members))
	for i, m := range req.Members {
		members[i] = domain.Member{
			Name:    m.Name,
			IsChild: m.IsChild,
			Class:   m.Class,
		}
	}

	return domain.Family{
		BookingRef:  req.BookingRef,
		CampingType: req.CampingType,
		Nights:      req.Nights,
		Members:     members,
	}
}
