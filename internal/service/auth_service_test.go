package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/guide4360/guide4360api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newAuthServiceWithMock(t *testing.T) (*AuthService, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)

	cfg := &config.Config{JWTSecret: "test-secret"}
	return NewAuthService(db, cfg), mock
}

func hashFixture(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	require.NoError(t, err)
	return string(hashed)
}

func userRows(t *testing.T, id int, username, password string) *sqlmock.Rows {
	t.Helper()
	return sqlmock.NewRows([]string{"id", "username", "hashed_password"}).
		AddRow(id, username, hashFixture(t, password))
}

func TestRegister_IssuesVerifiableToken(t *testing.T) {
	s, mock := newAuthServiceWithMock(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	user, token, err := s.Register("alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	claims, err := s.VerifySession(token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_DuplicateUsername(t *testing.T) {
	s, mock := newAuthServiceWithMock(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRows(t, 1, "alice", "s3cret"))

	_, _, err := s.Register("alice", "another")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_Success(t *testing.T) {
	s, mock := newAuthServiceWithMock(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRows(t, 7, "bob", "hunter2"))

	user, token, err := s.Login("bob", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, uint(7), user.ID)

	claims, err := s.VerifySession(token)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.UserID)
	assert.Equal(t, "bob", claims.Username)
}

func TestLogin_ConflatesUnknownUserAndWrongPassword(t *testing.T) {
	s, mock := newAuthServiceWithMock(t)

	// unknown username
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	_, _, unknownErr := s.Login("nobody", "whatever")
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)

	// wrong password
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRows(t, 7, "bob", "hunter2"))
	_, _, wrongErr := s.Login("bob", "wrong")
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)

	// the two failures must be indistinguishable to the caller
	assert.Equal(t, unknownErr, wrongErr)
}

func TestVerifySession_Garbage(t *testing.T) {
	s, _ := newAuthServiceWithMock(t)

	_, err := s.VerifySession("not-a-token")
	assert.Error(t, err)
}
