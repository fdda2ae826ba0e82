package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/okulsport/okulsport-backend/internal/app/models"
	"github.com/okulsport/okulsport-backend/internal/app/models/dto"
	"github.com/okulsport/okulsport-backend/internal/pkg/apperrors"
	"github.com/okulsport/okulsport-backend/internal/reference"
)

func testCatalog() *reference.Catalog {
	return &reference.Catalog{
		Branches: []reference.Branch{
			{Name: "Güreş"},
			{Name: "Taekwondo", RegistrationRequired: true},
		},
	}
}

func validRegistrationRequest() *dto.CreateStudentRegistrationRequest {
	return &dto.CreateStudentRegistrationRequest{
		School: dto.SchoolIdentity{
			Name:     "Kadıköy Anadolu Lisesi",
			District: "Kadıköy",
			Side:     "Anadolu",
			Type:     "Lise",
		},
		SportBranch:  "Güreş",
		TeacherName:  "Ali Kaya",
		TeacherPhone: "05551112233",
		Students: []dto.StudentItem{
			{FirstName: "Mehmet", LastName: "Demir", BirthDate: "2011-03-17", WeightClass: "52 kg"},
			{FirstName: "Ece", LastName: "Aydın", BirthDate: "2012-06-01"},
		},
	}
}

func TestStudentRegister(t *testing.T) {
	txRunner := &fakeTxRunner{}
	schools := &fakeSchoolStore{id: 3}
	students := &fakeStudentStore{}
	svc := NewStudentService(txRunner, schools, students, testCatalog(), zerolog.Nop())

	resp, err := svc.Register(context.Background(), validRegistrationRequest())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if resp.SchoolID != 3 {
		t.Errorf("schoolId = %d, want 3", resp.SchoolID)
	}
	if len(resp.Students) != 2 {
		t.Fatalf("created %d students, want 2", len(resp.Students))
	}
	if resp.Students[0].FirstName != "Mehmet" || resp.Students[1].FirstName != "Ece" {
		t.Errorf("students created out of input order: %+v", resp.Students)
	}
	if txRunner.calls != 1 {
		t.Errorf("transaction ran %d times, want 1", txRunner.calls)
	}

	first := students.created[0]
	if first.SchoolID != 3 || first.SportBranch != "Güreş" {
		t.Errorf("student row carries wrong school/branch: %+v", first)
	}
	wantBirth := time.Date(2011, 3, 17, 0, 0, 0, 0, time.UTC)
	if !first.BirthDate.Equal(wantBirth) {
		t.Errorf("birthDate = %v, want %v", first.BirthDate, wantBirth)
	}
	if first.TeacherName != "Ali Kaya" || first.TeacherPhone != "05551112233" {
		t.Errorf("submission-level teacher fields not copied: %+v", first)
	}
}

func TestStudentRegisterTaekwondoRequiresRegistrationNumber(t *testing.T) {
	svc := NewStudentService(&fakeTxRunner{}, &fakeSchoolStore{id: 3}, &fakeStudentStore{}, testCatalog(), zerolog.Nop())

	req := validRegistrationRequest()
	req.SportBranch = "Taekwondo"
	req.Students[0].RegistrationNumber = "TKD-10382"
	// Students[1] has none

	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
	if !strings.Contains(err.Error(), "Ece Aydın") {
		t.Errorf("error %q does not name the offending student", err.Error())
	}
	if !strings.Contains(err.Error(), "Taekwondo") {
		t.Errorf("error %q does not name the branch", err.Error())
	}
}

func TestStudentRegisterTaekwondoWithNumbers(t *testing.T) {
	students := &fakeStudentStore{}
	svc := NewStudentService(&fakeTxRunner{}, &fakeSchoolStore{id: 3}, students, testCatalog(), zerolog.Nop())

	req := validRegistrationRequest()
	req.SportBranch = "Taekwondo"
	req.Students[0].RegistrationNumber = "TKD-10382"
	req.Students[1].RegistrationNumber = "TKD-10383"

	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if students.created[1].RegistrationNumber != "TKD-10383" {
		t.Errorf("registration number not persisted: %+v", students.created[1])
	}
}

func TestStudentRegisterUnknownBranchNeedsNoNumber(t *testing.T) {
	// Branch names are not validated against the catalog; an unknown
	// branch just carries no registration requirement.
	svc := NewStudentService(&fakeTxRunner{}, &fakeSchoolStore{id: 3}, &fakeStudentStore{}, testCatalog(), zerolog.Nop())

	req := validRegistrationRequest()
	req.SportBranch = "Badminton"

	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
}

func TestStudentRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.CreateStudentRegistrationRequest)
		wantMsg string
	}{
		{
			name:    "missing branch",
			mutate:  func(r *dto.CreateStudentRegistrationRequest) { r.SportBranch = "" },
			wantMsg: "sportBranch",
		},
		{
			name:    "empty students",
			mutate:  func(r *dto.CreateStudentRegistrationRequest) { r.Students = nil },
			wantMsg: "students",
		},
		{
			name: "missing first name",
			mutate: func(r *dto.CreateStudentRegistrationRequest) {
				r.Students[1].FirstName = ""
			},
			wantMsg: "students[1].firstName",
		},
		{
			name: "bad birth date",
			mutate: func(r *dto.CreateStudentRegistrationRequest) {
				r.Students[0].BirthDate = "17.03.2011"
			},
			wantMsg: "students[0].birthDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txRunner := &fakeTxRunner{}
			svc := NewStudentService(txRunner, &fakeSchoolStore{id: 3}, &fakeStudentStore{}, testCatalog(), zerolog.Nop())

			req := validRegistrationRequest()
			tt.mutate(req)

			_, err := svc.Register(context.Background(), req)
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

func TestStudentUpdate(t *testing.T) {
	students := &fakeStudentStore{
		getByIDResult: &models.StudentRegistration{
			ID:          5,
			SchoolID:    3,
			FirstName:   "Mehmet",
			LastName:    "Demir",
			SportBranch: "Güreş",
			BirthDate:   time.Date(2011, 3, 17, 0, 0, 0, 0, time.UTC),
		},
	}
	svc := NewStudentService(&fakeTxRunner{}, &fakeSchoolStore{}, students, testCatalog(), zerolog.Nop())

	resp, err := svc.Update(context.Background(), 5, &dto.UpdateStudentRequest{
		FirstName:   "Mehmet",
		LastName:    "Demirci",
		BirthDate:   "2011-03-18",
		WeightClass: "57 kg",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if students.updated.LastName != "Demirci" || students.updated.WeightClass != "57 kg" {
		t.Errorf("update not applied: %+v", students.updated)
	}
	// The school and branch bindings must survive the edit untouched.
	if students.updated.SchoolID != 3 || students.updated.SportBranch != "Güreş" {
		t.Errorf("update moved the student: %+v", students.updated)
	}
	if resp.BirthDate != "2011-03-18" {
		t.Errorf("birthDate = %q, want 2011-03-18", resp.BirthDate)
	}
}

func TestStudentUpdateTaekwondoKeepsRequirement(t *testing.T) {
	students := &fakeStudentStore{
		getByIDResult: &models.StudentRegistration{
			ID:          5,
			SportBranch: "Taekwondo",
			BirthDate:   time.Date(2011, 3, 17, 0, 0, 0, 0, time.UTC),
		},
	}
	svc := NewStudentService(&fakeTxRunner{}, &fakeSchoolStore{}, students, testCatalog(), zerolog.Nop())

	_, err := svc.Update(context.Background(), 5, &dto.UpdateStudentRequest{
		FirstName: "Mehmet",
		LastName:  "Demir",
		BirthDate: "2011-03-17",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
}

func TestStudentUpdateNotFound(t *testing.T) {
	students := &fakeStudentStore{getByIDErr: apperrors.ErrStudentNotFound}
	svc := NewStudentService(&fakeTxRunner{}, &fakeSchoolStore{}, students, testCatalog(), zerolog.Nop())

	_, err := svc.Update(context.Background(), 99, &dto.UpdateStudentRequest{
		FirstName: "Mehmet",
		LastName:  "Demir",
		BirthDate: "2011-03-17",
	})
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("err = %v, want ErrStudentNotFound", err)
	}
}
