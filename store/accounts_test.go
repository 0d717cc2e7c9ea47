package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studenthub/models"
)

func TestRegisterStudentDefaults(t *testing.T) {
	db := openTestDB(t)
	accounts := NewAccounts(db)

	student, err := accounts.RegisterStudent("ana", "ana@x.com", "p", []string{"Physics", "Mathematics"})
	require.NoError(t, err)

	assert.Regexp(t, `^STU\d{4}$`, student.ID)
	assert.Equal(t, "Physics, Mathematics", student.Course)
	assert.Equal(t, "Active", student.Status)
	assert.GreaterOrEqual(t, student.Attendance, 60)
	assert.LessOrEqual(t, student.Attendance, 100)
	assert.GreaterOrEqual(t, student.GPA, 2.0)
	assert.LessOrEqual(t, student.GPA, 4.0)

	var persisted models.Student
	require.NoError(t, db.First(&persisted, "id = ?", student.ID).Error)
	assert.Equal(t, *student, persisted)
}

func TestRegisterStudentWithoutCoursesDefaultsToGeneral(t *testing.T) {
	db := openTestDB(t)
	accounts := NewAccounts(db)

	student, err := accounts.RegisterStudent("ben", "ben@x.com", "p", nil)
	require.NoError(t, err)
	assert.Equal(t, "General", student.Course)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	accounts := NewAccounts(db)

	_, err := accounts.RegisterStudent("ana", "ana@x.com", "p", nil)
	require.NoError(t, err)
	_, err = accounts.RegisterStudent("other", "ana@x.com", "q", nil)
	assert.ErrorIs(t, err, ErrDuplicateKey)

	_, err = accounts.RegisterAdmin("boss", "boss@x.com", "p")
	require.NoError(t, err)
	_, err = accounts.RegisterAdmin("boss2", "boss@x.com", "q")
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestRegisterStudentRetriesOnIDCollision(t *testing.T) {
	db := openTestDB(t)
	accounts := NewAccounts(db)

	require.NoError(t, db.Create(&models.Student{
		ID: "STU1111", Username: "taken", Email: "taken@x.com", Password: "p",
	}).Error)

	ids := []string{"STU1111", "STU1111", "STU2222"}
	calls := 0
	accounts.newID = func(tag string) string {
		require.Equal(t, "STU", tag)
		id := ids[calls]
		calls++
		return id
	}

	student, err := accounts.RegisterStudent("ana", "ana@x.com", "p", nil)
	require.NoError(t, err)
	assert.Equal(t, "STU2222", student.ID)
	assert.Equal(t, 3, calls)
}

func TestRegisterStudentGivesUpAfterBoundedRetries(t *testing.T) {
	db := openTestDB(t)
	accounts := NewAccounts(db)

	require.NoError(t, db.Create(&models.Student{
		ID: "STU1111", Username: "taken", Email: "taken@x.com", Password: "p",
	}).Error)
	accounts.newID = func(string) string { return "STU1111" }

	_, err := accounts.RegisterStudent("ana", "ana@x.com", "p", nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateKey)
	assert.True(t, strings.Contains(err.Error(), "exhausted"))
}

func TestAuthenticateAdminWinsOverStudent(t *testing.T) {
	db := openTestDB(t)
	accounts := NewAccounts(db)

	_, err := accounts.RegisterAdmin("dana", "dana@x.com", "secret")
	require.NoError(t, err)
	_, err = accounts.RegisterStudent("dana", "dana@x.com", "secret", nil)
	require.NoError(t, err)

	result, err := accounts.Authenticate("dana@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", result.Role)
	assert.Equal(t, "dana", result.Username)
	_, ok := result.Record.(*models.Admin)
	assert.True(t, ok)
}

func TestAuthenticateByUsername(t *testing.T) {
	db := openTestDB(t)
	accounts := NewAccounts(db)

	registered, err := accounts.RegisterStudent("eli", "eli@x.com", "pw", nil)
	require.NoError(t, err)

	result, err := accounts.Authenticate("eli", "pw")
	require.NoError(t, err)
	assert.Equal(t, "student", result.Role)
	assert.Equal(t, registered.ID, result.Record.(*models.Student).ID)
}

func TestAuthenticateInvalidCredentials(t *testing.T) {
	db := openTestDB(t)
	accounts := NewAccounts(db)

	_, err := accounts.RegisterStudent("eli", "eli@x.com", "pw", nil)
	require.NoError(t, err)

	_, err = accounts.Authenticate("eli", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = accounts.Authenticate("nobody@x.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
