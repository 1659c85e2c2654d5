package request

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baolive/camping-api/internal/domain"
)

func classPtr(s string) *string {
	return &s
}

func validRegistration() RegisterFamilyRequest {
	return RegisterFamilyRequest{
		BookingRef:  "BK-1",
		CampingType: "tent",
		Nights:      []string{"friday"},
		Members: []FamilyMemberRequest{
			{Name: "Ada", IsChild: true, Class: classPtr(domain.ClassBaobab)},
			{Name: "Pat", IsChild: false},
		},
	}
}

func TestRegisterFamilyRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterFamilyRequest)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(*RegisterFamilyRequest) {},
		},
		{
			name:    "missing booking ref",
			mutate:  func(r *RegisterFamilyRequest) { r.BookingRef = "" },
			wantErr: true,
		},
		{
			name:    "bad camping type",
			mutate:  func(r *RegisterFamilyRequest) { r.CampingType = "hotel" },
			wantErr: true,
		},
		{
			name:    "no nights",
			mutate:  func(r *RegisterFamilyRequest) { r.Nights = nil },
			wantErr: true,
		},
		{
			name:    "no members",
			mutate:  func(r *RegisterFamilyRequest) { r.Members = nil },
			wantErr: true,
		},
		{
			name: "no school child",
			mutate: func(r *RegisterFamilyRequest) {
				r.Members = []FamilyMemberRequest{
					{Name: "Pat", IsChild: false},
					{Name: "Sib", IsChild: true, Class: classPtr(domain.ClassOther)},
				}
			},
			wantErr: true,
		},
		{
			name: "child without class counts as non-school",
			mutate: func(r *RegisterFamilyRequest) {
				r.Members = []FamilyMemberRequest{
					{Name: "Kid", IsChild: true},
				}
			},
			wantErr: true,
		},
		{
			name: "olive child is enough",
			mutate: func(r *RegisterFamilyRequest) {
				r.Members = []FamilyMemberRequest{
					{Name: "Ada", IsChild: true, Class: classPtr(domain.ClassOlive)},
				}
			},
		},
		{
			name: "unknown class",
			mutate: func(r *RegisterFamilyRequest) {
				r.Members[0].Class = classPtr("Willow")
			},
			wantErr: true,
		},
		{
			name: "member without name",
			mutate: func(r *RegisterFamilyRequest) {
				r.Members = append(r.Members, FamilyMemberRequest{Name: ""})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegistration()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterFamilyRequest_ToDomain(t *testing.T) {
	req := validRegistration()

	family := req.ToDomain()
	assert.Equal(t, "BK-1", family.BookingRef)
	assert.Len(t, family.Members, 2)
	assert.True(t, family.Members[0].IsChild)
	assert.Equal(t, domain.ClassBaobab, *family.Members[0].Class)
}
