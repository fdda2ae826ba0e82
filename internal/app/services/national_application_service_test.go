package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/okulsport/okulsport-backend/internal/app/models/dto"
	"github.com/okulsport/okulsport-backend/internal/pkg/apperrors"
)

func validNationalRequest() *dto.CreateNationalApplicationRequest {
	return &dto.CreateNationalApplicationRequest{
		SchoolID:     42,
		TeacherName:  "Ayşe Yılmaz",
		TeacherPhone: "05551112233",
		Categories: []dto.CategoryItem{
			{SportBranch: "Satranç", AgeCategory: "Yıldız Kız"},
		},
	}
}

func TestNationalSubmit(t *testing.T) {
	apps := &fakeNationalApplicationStore{createID: 9}
	svc := NewNationalApplicationService(&fakeTxRunner{}, &fakeOkulStore{exists: true}, apps, zerolog.Nop())

	resp, err := svc.Submit(context.Background(), validNationalRequest())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if resp.ApplicationID != 9 || resp.SchoolID != 42 {
		t.Errorf("response = %+v, want applicationId 9 schoolId 42", resp)
	}
	if apps.created.SchoolID != 42 {
		t.Errorf("parent row school id = %d, want 42", apps.created.SchoolID)
	}
	if len(apps.categories) != 1 || apps.categories[0].NationalApplicationID != 9 {
		t.Errorf("categories not linked: %+v", apps.categories)
	}
}

func TestNationalSubmitUnknownSchool(t *testing.T) {
	apps := &fakeNationalApplicationStore{}
	svc := NewNationalApplicationService(&fakeTxRunner{}, &fakeOkulStore{exists: false}, apps, zerolog.Nop())

	_, err := svc.Submit(context.Background(), validNationalRequest())
	if !errors.Is(err, apperrors.ErrOkulNotFound) {
		t.Fatalf("err = %v, want ErrOkulNotFound", err)
	}
	if apps.created != nil {
		t.Error("parent row created for unknown school")
	}
}

func TestNationalSubmitConflict(t *testing.T) {
	apps := &fakeNationalApplicationStore{existingID: 4, exists: true}
	svc := NewNationalApplicationService(&fakeTxRunner{}, &fakeOkulStore{exists: true}, apps, zerolog.Nop())

	_, err := svc.Submit(context.Background(), validNationalRequest())
	if !errors.Is(err, apperrors.ErrApplicationExists) {
		t.Fatalf("err = %v, want ErrApplicationExists", err)
	}

	var custom *apperrors.CustomError
	if !errors.As(err, &custom) || custom.Details["existingApplicationId"] != int64(4) {
		t.Errorf("conflict error does not carry the existing application id: %v", err)
	}
}

func TestNationalSubmitRacedConflict(t *testing.T) {
	apps := &fakeNationalApplicationStore{
		createErr: &pgconn.PgError{Code: "23505", ConstraintName: "national_applications_school_id_key"},
		raceID:    4,
		raceFound: true,
	}
	svc := NewNationalApplicationService(&fakeTxRunner{}, &fakeOkulStore{exists: true}, apps, zerolog.Nop())

	_, err := svc.Submit(context.Background(), validNationalRequest())
	if !errors.Is(err, apperrors.ErrApplicationExists) {
		t.Fatalf("err = %v, want ErrApplicationExists", err)
	}

	var custom *apperrors.CustomError
	if !errors.As(err, &custom) || custom.Details["existingApplicationId"] != int64(4) {
		t.Errorf("raced conflict does not name the winning application: %v", err)
	}
}

func TestNationalSubmitValidation(t *testing.T) {
	svc := NewNationalApplicationService(&fakeTxRunner{}, &fakeOkulStore{exists: true}, &fakeNationalApplicationStore{}, zerolog.Nop())

	req := validNationalRequest()
	req.SchoolID = 0

	_, err := svc.Submit(context.Background(), req)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
}
