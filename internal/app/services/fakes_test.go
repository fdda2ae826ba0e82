package services

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/okulsport/okulsport-backend/internal/app/models"
	"github.com/okulsport/okulsport-backend/internal/app/repositories"
	"github.com/okulsport/okulsport-backend/internal/db"
	"github.com/okulsport/okulsport-backend/internal/pkg/apperrors"
)

// fakeTxRunner satisfies db.TxRunner without a database. The callback
// receives a nil pgx.Tx; the stores below never touch it.
type fakeTxRunner struct {
	beginErr error
	calls    int
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	if f.beginErr != nil {
		return f.beginErr
	}
	f.calls++
	return fn(ctx, nil)
}

type fakeSchoolStore struct {
	id       int64
	err      error
	received *models.School
}

func (f *fakeSchoolStore) GetOrCreateTx(_ context.Context, _ pgx.Tx, school *models.School) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.received = school
	return f.id, nil
}

type fakeApplicationStore struct {
	existingID int64
	exists     bool
	findErr    error

	raceID    int64
	raceFound bool
	raceErr   error

	createID  int64
	createErr error
	created   *models.Application

	categoryErr error
	categories  []*models.ApplicationCategory

	getByIDResult *models.Application
	getByIDErr    error

	getAllResult []*models.Application
	getAllTotal  int64
	getAllErr    error

	deleted   []int64
	deleteErr error
}

func (f *fakeApplicationStore) FindIDBySchoolTx(_ context.Context, _ pgx.Tx, _ int64) (int64, bool, error) {
	return f.existingID, f.exists, f.findErr
}

func (f *fakeApplicationStore) FindIDBySchool(_ context.Context, _ int64) (int64, bool, error) {
	return f.raceID, f.raceFound, f.raceErr
}

func (f *fakeApplicationStore) CreateTx(_ context.Context, _ pgx.Tx, app *models.Application) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = app
	return f.createID, nil
}

func (f *fakeApplicationStore) AddCategoryTx(_ context.Context, _ pgx.Tx, cat *models.ApplicationCategory) (int64, error) {
	if f.categoryErr != nil {
		return 0, f.categoryErr
	}
	f.categories = append(f.categories, cat)
	return int64(len(f.categories)), nil
}

func (f *fakeApplicationStore) GetByID(_ context.Context, _ int64) (*models.Application, error) {
	return f.getByIDResult, f.getByIDErr
}

func (f *fakeApplicationStore) GetAll(_ context.Context, _ uint64, _ int) ([]*models.Application, int64, error) {
	return f.getAllResult, f.getAllTotal, f.getAllErr
}

func (f *fakeApplicationStore) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeOkulStore struct {
	exists bool
	err    error
}

func (f *fakeOkulStore) ExistsTx(_ context.Context, _ pgx.Tx, _ int64) (bool, error) {
	return f.exists, f.err
}

type fakeNationalApplicationStore struct {
	existingID int64
	exists     bool
	findErr    error

	raceID    int64
	raceFound bool
	raceErr   error

	createID  int64
	createErr error
	created   *models.NationalApplication

	categories []*models.NationalApplicationCategory
}

func (f *fakeNationalApplicationStore) FindIDBySchoolTx(_ context.Context, _ pgx.Tx, _ int64) (int64, bool, error) {
	return f.existingID, f.exists, f.findErr
}

func (f *fakeNationalApplicationStore) FindIDBySchool(_ context.Context, _ int64) (int64, bool, error) {
	return f.raceID, f.raceFound, f.raceErr
}

func (f *fakeNationalApplicationStore) CreateTx(_ context.Context, _ pgx.Tx, app *models.NationalApplication) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = app
	return f.createID, nil
}

func (f *fakeNationalApplicationStore) AddCategoryTx(_ context.Context, _ pgx.Tx, cat *models.NationalApplicationCategory) (int64, error) {
	f.categories = append(f.categories, cat)
	return int64(len(f.categories)), nil
}

func (f *fakeNationalApplicationStore) GetByID(_ context.Context, _ int64) (*models.NationalApplication, error) {
	return nil, nil
}

func (f *fakeNationalApplicationStore) GetAll(_ context.Context, _ uint64, _ int) ([]*models.NationalApplication, int64, error) {
	return nil, 0, nil
}

func (f *fakeNationalApplicationStore) Delete(_ context.Context, _ int64) error {
	return nil
}

type fakeStudentStore struct {
	nextID    int64
	createErr error
	created   []*models.StudentRegistration

	getByIDResult *models.StudentRegistration
	getByIDErr    error

	updated   *models.StudentRegistration
	updateErr error

	deleted []int64
}

func (f *fakeStudentStore) CreateTx(_ context.Context, _ pgx.Tx, st *models.StudentRegistration) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, st)
	f.nextID++
	return f.nextID, nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, _ int64) (*models.StudentRegistration, error) {
	return f.getByIDResult, f.getByIDErr
}

func (f *fakeStudentStore) GetAll(_ context.Context, _ repositories.StudentFilter, _ uint64, _ int) ([]*models.StudentRegistration, int64, error) {
	return nil, 0, nil
}

func (f *fakeStudentStore) Update(_ context.Context, st *models.StudentRegistration) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = st
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeRegisteredSchoolStore struct {
	districts []string
	names     []string
	err       error
}

func (f *fakeRegisteredSchoolStore) Districts(_ context.Context, _ models.Side) ([]string, error) {
	return f.districts, f.err
}

func (f *fakeRegisteredSchoolStore) SchoolNames(_ context.Context, _ string) ([]string, error) {
	return f.names, f.err
}

type fakeOkulSearchStore struct {
	results []*models.Okul
	err     error
}

func (f *fakeOkulSearchStore) Search(_ context.Context, _, _ string, _ int) ([]*models.Okul, error) {
	return f.results, f.err
}

type fakeSchoolDirectory struct {
	schools []*models.School
	err     error
}

func (f *fakeSchoolDirectory) GetAll(_ context.Context) ([]*models.School, error) {
	return f.schools, f.err
}

func (f *fakeSchoolDirectory) GetByID(_ context.Context, id int64) (*models.School, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, school := range f.schools {
		if school.ID == id {
			return school, nil
		}
	}
	return nil, apperrors.ErrSchoolNotFound
}

type fakePostStore struct {
	slugs map[string]bool

	createID  int64
	createErr error
	created   *models.Post

	updated *models.Post

	tags     map[string]int64
	tagLinks []int64

	getByIDResult *models.Post
	getByIDErr    error

	categoryExists bool
}

func (f *fakePostStore) SlugExists(_ context.Context, slug string) (bool, error) {
	return f.slugs[slug], nil
}

func (f *fakePostStore) CreateTx(_ context.Context, _ pgx.Tx, post *models.Post) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = post
	return f.createID, nil
}

func (f *fakePostStore) UpdateTx(_ context.Context, _ pgx.Tx, post *models.Post) error {
	f.updated = post
	return nil
}

func (f *fakePostStore) GetOrCreateTagTx(_ context.Context, _ pgx.Tx, _, slug string) (int64, error) {
	if f.tags == nil {
		f.tags = make(map[string]int64)
	}
	if id, ok := f.tags[slug]; ok {
		return id, nil
	}
	id := int64(len(f.tags) + 1)
	f.tags[slug] = id
	return id, nil
}

func (f *fakePostStore) ReplaceTagsTx(_ context.Context, _ pgx.Tx, _ int64, tagIDs []int64) error {
	f.tagLinks = tagIDs
	return nil
}

func (f *fakePostStore) GetByID(_ context.Context, _ int64) (*models.Post, error) {
	return f.getByIDResult, f.getByIDErr
}

func (f *fakePostStore) GetBySlug(_ context.Context, _ string) (*models.Post, error) {
	return f.getByIDResult, f.getByIDErr
}

func (f *fakePostStore) GetAll(_ context.Context, _ repositories.PostFilter, _ uint64, _ int) ([]*models.Post, int64, error) {
	return nil, 0, nil
}

func (f *fakePostStore) SetPublished(_ context.Context, _ int64, _ bool) error {
	return nil
}

func (f *fakePostStore) Delete(_ context.Context, _ int64) error {
	return nil
}

func (f *fakePostStore) CategoryExists(_ context.Context, _ int64) (bool, error) {
	return f.categoryExists, nil
}

func (f *fakePostStore) CreateCategory(_ context.Context, _ *models.PostCategory) (int64, error) {
	return 1, nil
}

func (f *fakePostStore) GetCategories(_ context.Context) ([]*models.PostCategory, error) {
	return nil, nil
}
