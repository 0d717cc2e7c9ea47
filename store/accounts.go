package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"studenthub/models"
)

// maxIDAttempts bounds the insert retry loop when a generated account
// id collides with an existing row.
const maxIDAttempts = 5

// Accounts covers registration and the login check for the two account
// tables.
type Accounts struct {
	db       *gorm.DB
	students *Gateway[models.Student]
	admins   *Gateway[models.Admin]

	// newID is swappable for tests.
	newID func(tag string) string
}

func NewAccounts(db *gorm.DB) *Accounts {
	return &Accounts{
		db:       db,
		students: NewGateway[models.Student](db, Descriptor{}),
		admins:   NewGateway[models.Admin](db, Descriptor{}),
		newID:    NewAccountID,
	}
}

// LoginResult is the matched account; Record is the full row of
// whichever table matched.
type LoginResult struct {
	Role     string
	Username string
	Record   any
}

func (a *Accounts) RegisterStudent(username, email, password string, selectedCourses []string) (*models.Student, error) {
	course := "General"
	if len(selectedCourses) > 0 {
		course = strings.Join(selectedCourses, ", ")
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		student := models.Student{
			ID:         a.newID("STU"),
			Username:   username,
			Email:      email,
			Password:   password,
			Course:     course,
			Status:     "Active",
			Attendance: RandomAttendance(),
			GPA:        RandomGPA(),
		}
		err := a.students.Create(&student)
		if err == nil {
			return &student, nil
		}
		if !errors.Is(err, ErrDuplicateKey) {
			return nil, err
		}
		taken, checkErr := a.emailExists(&models.Student{}, email)
		if checkErr != nil {
			return nil, classify(checkErr)
		}
		if taken {
			return nil, ErrDuplicateKey
		}
		// id collision, draw a fresh one
	}
	return nil, fmt.Errorf("store: student id space exhausted after %d attempts", maxIDAttempts)
}

func (a *Accounts) RegisterAdmin(username, email, password string) (*models.Admin, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		admin := models.Admin{
			ID:       a.newID("ADM"),
			Username: username,
			Email:    email,
			Password: password,
		}
		err := a.admins.Create(&admin)
		if err == nil {
			return &admin, nil
		}
		if !errors.Is(err, ErrDuplicateKey) {
			return nil, err
		}
		taken, checkErr := a.emailExists(&models.Admin{}, email)
		if checkErr != nil {
			return nil, classify(checkErr)
		}
		if taken {
			return nil, ErrDuplicateKey
		}
	}
	return nil, fmt.Errorf("store: admin id space exhausted after %d attempts", maxIDAttempts)
}

// Authenticate matches the credential pair against admins first, then
// students, so an admin row wins when both tables hold the same pair.
// Passwords are compared exactly as stored.
func (a *Accounts) Authenticate(usernameOrEmail, password string) (*LoginResult, error) {
	var admin models.Admin
	err := a.db.
		Where("(email = ? OR username = ?) AND password = ?", usernameOrEmail, usernameOrEmail, password).
		First(&admin).Error
	if err == nil {
		return &LoginResult{Role: "admin", Username: admin.Username, Record: &admin}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, classify(err)
	}

	var student models.Student
	err = a.db.
		Where("(email = ? OR username = ?) AND password = ?", usernameOrEmail, usernameOrEmail, password).
		First(&student).Error
	if err == nil {
		return &LoginResult{Role: "student", Username: student.Username, Record: &student}, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	return nil, classify(err)
}

func (a *Accounts) emailExists(model any, email string) (bool, error) {
	var count int64
	err := a.db.Model(model).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
