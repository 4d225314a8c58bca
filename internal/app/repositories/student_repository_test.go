package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
	"github.com/yigit/devacademy/internal/app/models"
	"github.com/yigit/devacademy/internal/pkg/apperrors"
	"github.com/yigit/devacademy/internal/pkg/helpers"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func strPtr(s string) *string { return &s }

var createdAt = time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

func studentRows() *pgxmock.Rows {
	return pgxmock.NewRows(studentColumns)
}

func addStudent(rows *pgxmock.Rows, id int64, email string, surnames string, languages []int32) *pgxmock.Rows {
	return rows.AddRow(id, "Ada", surnames, email, "$2a$10$digest", (*string)(nil),
		28, strPtr("UK"), (*string)(nil), languages, true, createdAt)
}

func TestStudentCreate(t *testing.T) {
	mock := newMock(t)
	repo := NewStudentRepository(mock)

	student := &models.Student{Name: "Ada", Surnames: "Lovelace", Email: "ada@example.com", Password: "digest", Age: 28}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO students (profile_picture,name,surnames,email,password,age,nationality,phone_number,languages)")).
		WithArgs((*string)(nil), "Ada", "Lovelace", "ada@example.com", "digest", 28, (*string)(nil), (*string)(nil), []int32{}).
		WillReturnRows(pgxmock.NewRows([]string{"student_id", "is_active", "created_at"}).AddRow(int64(7), true, createdAt))

	require.NoError(t, repo.Create(context.Background(), student))
	require.Equal(t, int64(7), student.ID)
	require.True(t, student.IsActive)
	require.Equal(t, []int32{}, student.Languages)
}

func TestStudentCreateTranslatesConstraintErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"duplicate email", &pgconn.PgError{Code: "23505", ConstraintName: "students_email_active_key"}, apperrors.ErrEmailAlreadyExists},
		{"underage", &pgconn.PgError{Code: "23514", ConstraintName: "chk_age_adult"}, apperrors.ErrUnderage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			mock.ExpectQuery("INSERT INTO students").
				WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), "a@b.co", pgxmock.AnyArg(),
					12, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
				WillReturnError(tt.err)

			err := NewStudentRepository(mock).Create(context.Background(), &models.Student{Email: "a@b.co", Age: 12})
			require.ErrorIs(t, err, tt.want)

			var pgErr *pgconn.PgError
			require.NotErrorAs(t, err, &pgErr)
		})
	}
}

func TestStudentGetByIDOnlyActive(t *testing.T) {
	mock := newMock(t)
	repo := NewStudentRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM students WHERE is_active = TRUE AND student_id = $1 LIMIT 1")).
		WithArgs(int64(7)).
		WillReturnRows(addStudent(studentRows(), 7, "ada@example.com", "Lovelace", []int32{1}))

	student, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", student.Email)
	require.Equal(t, []int32{1}, student.Languages)

	mock.ExpectQuery("FROM students WHERE is_active = TRUE AND student_id").
		WithArgs(int64(8)).
		WillReturnRows(studentRows())

	_, err = repo.GetByID(context.Background(), 8)
	require.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudentGetByEmail(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE is_active = TRUE AND email = $1")).
		WithArgs("gone@example.com").
		WillReturnRows(studentRows())

	_, err := NewStudentRepository(mock).GetByEmail(context.Background(), "gone@example.com")
	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestStudentListPage(t *testing.T) {
	mock := newMock(t)
	repo := NewStudentRepository(mock)

	rows := studentRows()
	for i := int64(1); i <= 5; i++ {
		addStudent(rows, i, "s@example.com", "X", []int32{})
	}
	mock.ExpectQuery(regexp.QuoteMeta("WHERE is_active = TRUE ORDER BY student_id ASC LIMIT 5 OFFSET 0")).
		WillReturnRows(rows)

	students, err := repo.ListPage(context.Background(), helpers.Page{Limit: 5, Offset: 0})
	require.NoError(t, err)
	require.Len(t, students, 5)
}

func TestStudentUpdateWritesOnlyChangedColumns(t *testing.T) {
	mock := newMock(t)
	repo := NewStudentRepository(mock)

	mock.ExpectQuery("FROM students WHERE is_active = TRUE AND student_id").
		WithArgs(int64(7)).
		WillReturnRows(addStudent(studentRows(), 7, "ada@example.com", "Lovelace", []int32{1}))

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE students SET languages = $1, surnames = $2 WHERE student_id = $3 AND is_active = TRUE RETURNING")).
		WithArgs([]int32{1, 2}, "King", int64(7)).
		WillReturnRows(addStudent(studentRows(), 7, "ada@example.com", "King", []int32{1, 2}))

	name, surnames, languages := "Ada", "King", []int32{1, 2}
	result, err := repo.Update(context.Background(), 7, models.StudentPatch{
		Name:      &name,
		Surnames:  &surnames,
		Languages: &languages,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"languages", "surnames"}, result.Changed)
	require.Equal(t, "King", result.Student.Surnames)
	require.Equal(t, "Lovelace", result.Previous.Surnames)
}

func TestStudentUpdateWithoutChangesSkipsWrite(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery("FROM students WHERE is_active = TRUE AND student_id").
		WithArgs(int64(7)).
		WillReturnRows(addStudent(studentRows(), 7, "ada@example.com", "Lovelace", []int32{1}))

	surnames := "Lovelace"
	result, err := NewStudentRepository(mock).Update(context.Background(), 7, models.StudentPatch{Surnames: &surnames})
	require.NoError(t, err)
	require.Empty(t, result.Changed)
}

func TestStudentUpdateEmailConflict(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery("FROM students WHERE is_active = TRUE AND student_id").
		WithArgs(int64(7)).
		WillReturnRows(addStudent(studentRows(), 7, "ada@example.com", "Lovelace", []int32{}))
	mock.ExpectQuery("UPDATE students SET email").
		WithArgs("taken@example.com", int64(7)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "students_email_active_key"})

	email := "taken@example.com"
	_, err := NewStudentRepository(mock).Update(context.Background(), 7, models.StudentPatch{Email: &email})
	require.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestStudentDeactivate(t *testing.T) {
	mock := newMock(t)
	repo := NewStudentRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE students SET is_active = $1, deactivated_at = NOW() WHERE student_id = $2 AND is_active = TRUE")).
		WithArgs(false, int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, repo.Deactivate(context.Background(), 7))

	mock.ExpectExec("UPDATE students SET is_active").
		WithArgs(false, int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	require.ErrorIs(t, repo.Deactivate(context.Background(), 7), apperrors.ErrStudentNotFound)
}

func TestStudentDeleteReturnsPicture(t *testing.T) {
	mock := newMock(t)
	repo := NewStudentRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM students WHERE student_id = $1 RETURNING profile_picture")).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"profile_picture"}).AddRow(strPtr("uploads/profile_pictures/a.png")))

	picture, err := repo.Delete(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "uploads/profile_pictures/a.png", *picture)

	mock.ExpectQuery("DELETE FROM students").
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows([]string{"profile_picture"}))

	_, err = repo.Delete(context.Background(), 9)
	require.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudentUpdatePassword(t *testing.T) {
	mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE students SET password = $1 WHERE student_id = $2 AND is_active = TRUE")).
		WithArgs("new-digest", int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, NewStudentRepository(mock).UpdatePassword(context.Background(), 7, "new-digest"))
}
