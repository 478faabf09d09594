package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestAdminBeforeCreate_HashesPlaintextPassword(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Admin{}))

	admin := Admin{Username: "owner", PasswordHash: "s3cret", Email: "owner@example.com"}
	require.NoError(t, db.Create(&admin).Error)

	assert.NotEqual(t, "s3cret", admin.PasswordHash)
	assert.True(t, strings.HasPrefix(admin.PasswordHash, "$2a$"))

	assert.True(t, admin.CheckPassword("s3cret"))
	assert.False(t, admin.CheckPassword("wrong"))
}

func TestAdminBeforeCreate_KeepsExistingHash(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Admin{}))

	first := Admin{Username: "owner", PasswordHash: "s3cret"}
	require.NoError(t, db.Create(&first).Error)

	second := Admin{Username: "copy", PasswordHash: first.PasswordHash}
	require.NoError(t, db.Create(&second).Error)

	assert.Equal(t, first.PasswordHash, second.PasswordHash)
	assert.True(t, second.CheckPassword("s3cret"))
}
