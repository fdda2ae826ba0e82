package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/okulsport/okulsport-backend/internal/app/models/dto"
	"github.com/okulsport/okulsport-backend/internal/pkg/apperrors"
)

func validApplicationRequest() *dto.CreateApplicationRequest {
	return &dto.CreateApplicationRequest{
		School: dto.SchoolIdentity{
			Name:     "Kadıköy Anadolu Lisesi",
			District: "Kadıköy",
			Side:     "Anadolu",
			Type:     "Lise",
		},
		TeacherName:  "Ayşe Yılmaz",
		TeacherPhone: "05551112233",
		Categories: []dto.CategoryItem{
			{SportBranch: "Satranç", AgeCategory: "Yıldız Kız"},
			{SportBranch: "Masa Tenisi", AgeCategory: "Genç Erkek"},
		},
	}
}

func TestApplicationSubmit(t *testing.T) {
	txRunner := &fakeTxRunner{}
	schools := &fakeSchoolStore{id: 3}
	apps := &fakeApplicationStore{createID: 12}
	svc := NewApplicationService(txRunner, schools, apps, zerolog.Nop())

	resp, err := svc.Submit(context.Background(), validApplicationRequest())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if resp.ApplicationID != 12 {
		t.Errorf("applicationId = %d, want 12", resp.ApplicationID)
	}
	if resp.SchoolID != 3 {
		t.Errorf("schoolId = %d, want 3", resp.SchoolID)
	}
	if txRunner.calls != 1 {
		t.Errorf("transaction ran %d times, want 1", txRunner.calls)
	}
	if apps.created == nil || apps.created.SchoolID != 3 {
		t.Fatalf("parent row not created with resolved school id: %+v", apps.created)
	}

	if len(apps.categories) != 2 {
		t.Fatalf("created %d categories, want 2", len(apps.categories))
	}
	if apps.categories[0].SportBranch != "Satranç" || apps.categories[1].SportBranch != "Masa Tenisi" {
		t.Errorf("categories inserted out of input order: %+v", apps.categories)
	}
	for i, cat := range apps.categories {
		if cat.ApplicationID != 12 {
			t.Errorf("category %d linked to application %d, want 12", i, cat.ApplicationID)
		}
	}
}

func TestApplicationSubmitTrimsSchoolIdentity(t *testing.T) {
	schools := &fakeSchoolStore{id: 3}
	svc := NewApplicationService(&fakeTxRunner{}, schools, &fakeApplicationStore{createID: 1}, zerolog.Nop())

	req := validApplicationRequest()
	req.School.Name = "  Kadıköy Anadolu Lisesi  "
	req.School.District = " Kadıköy "

	if _, err := svc.Submit(context.Background(), req); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if schools.received.Name != "Kadıköy Anadolu Lisesi" {
		t.Errorf("school name not trimmed: %q", schools.received.Name)
	}
	if schools.received.District != "Kadıköy" {
		t.Errorf("district not trimmed: %q", schools.received.District)
	}
}

func TestApplicationSubmitConflict(t *testing.T) {
	apps := &fakeApplicationStore{existingID: 7, exists: true}
	svc := NewApplicationService(&fakeTxRunner{}, &fakeSchoolStore{id: 3}, apps, zerolog.Nop())

	_, err := svc.Submit(context.Background(), validApplicationRequest())
	if !errors.Is(err, apperrors.ErrApplicationExists) {
		t.Fatalf("err = %v, want ErrApplicationExists", err)
	}

	var custom *apperrors.CustomError
	if !errors.As(err, &custom) {
		t.Fatalf("conflict error is not a CustomError: %v", err)
	}
	if got := custom.Details["existingApplicationId"]; got != int64(7) {
		t.Errorf("existingApplicationId detail = %v, want 7", got)
	}
	if apps.created != nil {
		t.Error("parent row was created despite the conflict")
	}
}

func TestApplicationSubmitRacedConflict(t *testing.T) {
	// Guard passes but the insert loses a race on the unique constraint.
	// The conflict must still name the application that won.
	apps := &fakeApplicationStore{
		createErr: &pgconn.PgError{Code: "23505", ConstraintName: "applications_school_id_key"},
		raceID:    7,
		raceFound: true,
	}
	svc := NewApplicationService(&fakeTxRunner{}, &fakeSchoolStore{id: 3}, apps, zerolog.Nop())

	_, err := svc.Submit(context.Background(), validApplicationRequest())
	if !errors.Is(err, apperrors.ErrApplicationExists) {
		t.Fatalf("err = %v, want ErrApplicationExists", err)
	}

	var custom *apperrors.CustomError
	if !errors.As(err, &custom) {
		t.Fatalf("conflict error is not a CustomError: %v", err)
	}
	if got := custom.Details["existingApplicationId"]; got != int64(7) {
		t.Errorf("existingApplicationId detail = %v, want 7", got)
	}
}

func TestApplicationSubmitRacedConflictWinnerGone(t *testing.T) {
	// The winning row cannot be re-read; the conflict still surfaces,
	// just without the id detail.
	apps := &fakeApplicationStore{
		createErr: &pgconn.PgError{Code: "23505", ConstraintName: "applications_school_id_key"},
		raceErr:   errors.New("connection lost"),
	}
	svc := NewApplicationService(&fakeTxRunner{}, &fakeSchoolStore{id: 3}, apps, zerolog.Nop())

	_, err := svc.Submit(context.Background(), validApplicationRequest())
	if !errors.Is(err, apperrors.ErrApplicationExists) {
		t.Fatalf("err = %v, want ErrApplicationExists", err)
	}
}

func TestApplicationSubmitChildFailureAborts(t *testing.T) {
	apps := &fakeApplicationStore{createID: 12, categoryErr: errors.New("insert failed")}
	svc := NewApplicationService(&fakeTxRunner{}, &fakeSchoolStore{id: 3}, apps, zerolog.Nop())

	_, err := svc.Submit(context.Background(), validApplicationRequest())
	if err == nil {
		t.Fatal("Submit succeeded despite a failing category insert")
	}
}

func TestApplicationSubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.CreateApplicationRequest)
		wantMsg string
	}{
		{
			name:    "missing school name",
			mutate:  func(r *dto.CreateApplicationRequest) { r.School.Name = "   " },
			wantMsg: "school.name",
		},
		{
			name:    "missing district",
			mutate:  func(r *dto.CreateApplicationRequest) { r.School.District = "" },
			wantMsg: "school.district",
		},
		{
			name:    "invalid side",
			mutate:  func(r *dto.CreateApplicationRequest) { r.School.Side = "Asya" },
			wantMsg: "school.side",
		},
		{
			name:    "invalid type",
			mutate:  func(r *dto.CreateApplicationRequest) { r.School.Type = "Ilk" },
			wantMsg: "school.type",
		},
		{
			name:    "school name too long",
			mutate:  func(r *dto.CreateApplicationRequest) { r.School.Name = strings.Repeat("a", 101) },
			wantMsg: "school.name",
		},
		{
			name:    "missing teacher name",
			mutate:  func(r *dto.CreateApplicationRequest) { r.TeacherName = "" },
			wantMsg: "teacherName",
		},
		{
			name:    "teacher name too long",
			mutate:  func(r *dto.CreateApplicationRequest) { r.TeacherName = strings.Repeat("a", 101) },
			wantMsg: "teacherName",
		},
		{
			name:    "bad phone",
			mutate:  func(r *dto.CreateApplicationRequest) { r.TeacherPhone = "12345" },
			wantMsg: "teacherPhone",
		},
		{
			name:    "empty categories",
			mutate:  func(r *dto.CreateApplicationRequest) { r.Categories = nil },
			wantMsg: "categories",
		},
		{
			name: "category missing branch",
			mutate: func(r *dto.CreateApplicationRequest) {
				r.Categories[1].SportBranch = ""
			},
			wantMsg: "categories[1].sportBranch",
		},
		{
			name: "category missing age",
			mutate: func(r *dto.CreateApplicationRequest) {
				r.Categories[0].AgeCategory = " "
			},
			wantMsg: "categories[0].ageCategory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txRunner := &fakeTxRunner{}
			svc := NewApplicationService(txRunner, &fakeSchoolStore{id: 3}, &fakeApplicationStore{}, zerolog.Nop())

			req := validApplicationRequest()
			tt.mutate(req)

			_, err := svc.Submit(context.Background(), req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("err = %v, want ErrValidationFailed", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not name %q", err.Error(), tt.wantMsg)
			}
			if txRunner.calls != 0 {
				t.Error("transaction started despite validation failure")
			}
		})
	}
}

func TestApplicationSubmitAcceptsPhoneFormats(t *testing.T) {
	for _, phone := range []string{"05551112233", "+905551112233", "0555 111 22 33", "905551112233"} {
		req := validApplicationRequest()
		req.TeacherPhone = phone
		svc := NewApplicationService(&fakeTxRunner{}, &fakeSchoolStore{id: 3}, &fakeApplicationStore{createID: 1}, zerolog.Nop())
		if _, err := svc.Submit(context.Background(), req); err != nil {
			t.Errorf("phone %q rejected: %v", phone, err)
		}
	}
}
