package services

import (
	"context"
	"errors"
	"mime/multipart"
	"sort"

	"github.com/yigit/devacademy/internal/app/models"
	"github.com/yigit/devacademy/internal/app/repositories"
	"github.com/yigit/devacademy/internal/pkg/apperrors"
	"github.com/yigit/devacademy/internal/pkg/filestorage"
	"github.com/yigit/devacademy/internal/pkg/helpers"
)

// fakeStudents keeps students in memory, mirroring the repository's
// active-only reads and constraint errors.
type fakeStudents struct {
	byID      map[int64]*models.Student
	nextID    int64
	createErr error
	updateErr error
}

func newFakeStudents() *fakeStudents {
	return &fakeStudents{byID: map[int64]*models.Student{}, nextID: 1}
}

func (f *fakeStudents) add(s *models.Student) *models.Student {
	s.ID = f.nextID
	s.IsActive = true
	f.nextID++
	f.byID[s.ID] = s
	return s
}

func (f *fakeStudents) Create(_ context.Context, s *models.Student) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.byID {
		if existing.IsActive && existing.Email == s.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	if s.Age < 18 {
		return apperrors.ErrUnderage
	}
	f.add(s)
	return nil
}

func (f *fakeStudents) active() []*models.Student {
	out := []*models.Student{}
	for _, s := range f.byID {
		if s.IsActive {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeStudents) List(context.Context) ([]*models.Student, error) {
	return f.active(), nil
}

func (f *fakeStudents) ListPage(_ context.Context, page helpers.Page) ([]*models.Student, error) {
	all := f.active()
	start := min(int(page.Offset), len(all))
	end := min(start+int(page.Limit), len(all))
	return all[start:end], nil
}

func (f *fakeStudents) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := f.byID[id]
	if !ok || !s.IsActive {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

func (f *fakeStudents) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range f.active() {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudents) Update(ctx context.Context, id int64, patch models.StudentPatch) (*repositories.StudentUpdate, error) {
	current, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f.updateErr != nil {
		return nil, f.updateErr
	}

	previous := *current
	changes := patch.Changes(current)
	updated := *current
	changed := []string{}
	for column, value := range changes {
		changed = append(changed, column)
		switch column {
		case "name":
			updated.Name = value.(string)
		case "surnames":
			updated.Surnames = value.(string)
		case "email":
			updated.Email = value.(string)
		case "age":
			updated.Age = value.(int)
		case "profile_picture":
			v := value.(string)
			updated.ProfilePicture = &v
		case "languages":
			updated.Languages = value.([]int32)
		}
	}
	sort.Strings(changed)
	f.byID[id] = &updated
	return &repositories.StudentUpdate{Student: &updated, Previous: &previous, Changed: changed}, nil
}

func (f *fakeStudents) UpdatePassword(ctx context.Context, id int64, digest string) error {
	s, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	s.Password = digest
	return nil
}

func (f *fakeStudents) Deactivate(ctx context.Context, id int64) error {
	s, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	s.IsActive = false
	return nil
}

func (f *fakeStudents) Delete(_ context.Context, id int64) (*string, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	delete(f.byID, id)
	return s.ProfilePicture, nil
}

// fakeStorage records saved and deleted paths without touching disk
type fakeStorage struct {
	saveErr error
	saved   []string
	deleted []string
}

func (f *fakeStorage) SaveImage(fh *multipart.FileHeader, subPath string) (*filestorage.FileInfo, error) {
	if fh == nil {
		return nil, nil
	}
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	p := "uploads/" + subPath + "/" + fh.Filename
	f.saved = append(f.saved, p)
	return &filestorage.FileInfo{Path: p, Filename: fh.Filename}, nil
}

func (f *fakeStorage) DeleteFile(path string) error {
	f.deleted = append(f.deleted, path)
	return nil
}

func (f *fakeStorage) GetFullPath(path string) string { return path }

type fakeLanguages struct {
	byID   map[int64]*models.Language
	nextID int64
	inUse  map[int64]bool
}

func newFakeLanguages() *fakeLanguages {
	return &fakeLanguages{byID: map[int64]*models.Language{}, nextID: 1, inUse: map[int64]bool{}}
}

func (f *fakeLanguages) Create(_ context.Context, name string) (*models.Language, error) {
	for _, l := range f.byID {
		if l.Name == name {
			return nil, apperrors.ErrLanguageExists
		}
	}
	l := &models.Language{ID: f.nextID, Name: name}
	f.nextID++
	f.byID[l.ID] = l
	return l, nil
}

func (f *fakeLanguages) List(context.Context) ([]*models.Language, error) {
	out := []*models.Language{}
	for _, l := range f.byID {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeLanguages) GetByID(_ context.Context, id int64) (*models.Language, error) {
	l, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrLanguageNotFound
	}
	return l, nil
}

func (f *fakeLanguages) Rename(ctx context.Context, id int64, name string) (*models.Language, error) {
	l, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	l.Name = name
	return l, nil
}

func (f *fakeLanguages) Delete(_ context.Context, id int64) error {
	if f.inUse[id] {
		return apperrors.ErrLanguageInUse
	}
	if _, ok := f.byID[id]; !ok {
		return apperrors.ErrLanguageNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeCourses struct {
	created []*models.Course
	err     error
}

func (f *fakeCourses) Create(_ context.Context, c *models.Course) error {
	if f.err != nil {
		return f.err
	}
	c.ID = int64(len(f.created) + 1)
	f.created = append(f.created, c)
	return nil
}

func (f *fakeCourses) List(context.Context) ([]*models.Course, error) {
	return f.created, nil
}

func (f *fakeCourses) GetByID(_ context.Context, id int64) (*models.Course, error) {
	for _, c := range f.created {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

type enrollmentKey struct{ student, course int64 }

type fakeEnrollments struct {
	courses  map[int64]bool
	enrolled map[enrollmentKey]bool
}

func newFakeEnrollments(courseIDs ...int64) *fakeEnrollments {
	f := &fakeEnrollments{courses: map[int64]bool{}, enrolled: map[enrollmentKey]bool{}}
	for _, id := range courseIDs {
		f.courses[id] = true
	}
	return f
}

func (f *fakeEnrollments) Enroll(_ context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	if !f.courses[courseID] {
		return nil, repositories.ErrEnrollmentCourseMissing
	}
	key := enrollmentKey{studentID, courseID}
	if f.enrolled[key] {
		return nil, apperrors.ErrAlreadyEnrolled
	}
	f.enrolled[key] = true
	return &models.Enrollment{StudentID: studentID, CourseID: courseID}, nil
}

func (f *fakeEnrollments) ListCourses(_ context.Context, studentID int64) ([]*models.EnrolledCourse, error) {
	out := []*models.EnrolledCourse{}
	for key := range f.enrolled {
		if key.student == studentID {
			out = append(out, &models.EnrolledCourse{CourseID: key.course})
		}
	}
	return out, nil
}

func (f *fakeEnrollments) RemoveAll(_ context.Context, studentID int64) (int64, error) {
	var n int64
	for key := range f.enrolled {
		if key.student == studentID {
			delete(f.enrolled, key)
			n++
		}
	}
	return n, nil
}

func (f *fakeEnrollments) Remove(_ context.Context, studentID, courseID int64) (models.RemovalStatus, error) {
	key := enrollmentKey{studentID, courseID}
	switch {
	case f.enrolled[key]:
		delete(f.enrolled, key)
		return models.RemovalDeleted, nil
	case f.courses[courseID]:
		return models.RemovalNotEnrolled, nil
	default:
		return models.RemovalNoCourse, nil
	}
}

var errStorageDown = errors.New("connection refused")
