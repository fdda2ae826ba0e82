package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okulsport/okulsport-backend/internal/app/models"
	"github.com/okulsport/okulsport-backend/internal/pkg/apperrors"
)

func newReferenceService(schools *fakeSchoolDirectory) ReferenceService {
	return NewReferenceService(testCatalog(), &fakeRegisteredSchoolStore{}, &fakeOkulSearchStore{}, schools)
}

func TestGetSchools(t *testing.T) {
	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	svc := newReferenceService(&fakeSchoolDirectory{schools: []*models.School{
		{ID: 1, Name: "Bakırköy Ortaokulu", District: "Bakırköy", Side: models.SideAvrupa, Type: models.SchoolTypeOrta, CreatedAt: created},
		{ID: 2, Name: "Kadıköy Anadolu Lisesi", District: "Kadıköy", Side: models.SideAnadolu, Type: models.SchoolTypeLise, CreatedAt: created},
	}})

	schools, err := svc.GetSchools(context.Background())
	if err != nil {
		t.Fatalf("GetSchools: %v", err)
	}
	if len(schools) != 2 {
		t.Fatalf("got %d schools, want 2", len(schools))
	}
	if schools[0].Name != "Bakırköy Ortaokulu" || schools[0].Side != "Avrupa" {
		t.Errorf("first school = %+v", schools[0])
	}
	if !schools[1].CreatedAt.Equal(created) {
		t.Errorf("createdAt = %v, want %v", schools[1].CreatedAt, created)
	}
}

func TestGetSchoolsEmpty(t *testing.T) {
	schools, err := newReferenceService(&fakeSchoolDirectory{}).GetSchools(context.Background())
	if err != nil {
		t.Fatalf("GetSchools: %v", err)
	}
	if schools == nil || len(schools) != 0 {
		t.Errorf("want an empty non-nil slice, got %#v", schools)
	}
}

func TestGetSchool(t *testing.T) {
	svc := newReferenceService(&fakeSchoolDirectory{schools: []*models.School{
		{ID: 3, Name: "Üsküdar Lisesi", District: "Üsküdar", Side: models.SideAnadolu, Type: models.SchoolTypeLise},
	}})

	school, err := svc.GetSchool(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetSchool: %v", err)
	}
	if school.ID != 3 || school.District != "Üsküdar" {
		t.Errorf("school = %+v", school)
	}
}

func TestGetSchoolNotFound(t *testing.T) {
	_, err := newReferenceService(&fakeSchoolDirectory{}).GetSchool(context.Background(), 99)
	if !errors.Is(err, apperrors.ErrSchoolNotFound) {
		t.Fatalf("err = %v, want ErrSchoolNotFound", err)
	}
}

func TestGetSchoolInvalidID(t *testing.T) {
	_, err := newReferenceService(&fakeSchoolDirectory{}).GetSchool(context.Background(), 0)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
}
