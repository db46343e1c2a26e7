package service

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"stepwise_backend/internal/config"
	"stepwise_backend/internal/model"
	"stepwise_backend/pkg/database"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(&config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"}, false)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

var threeSteps = model.Steps{
	{ID: "step-1", Text: "$a^2 + b^2 = c^2$"},
	{ID: "step-2", Text: "$c^2 = 9 + 16 = 25$"},
	{ID: "step-3", Text: "$c = 5$"},
}

var (
	adminUser  = &model.User{BaseModel: model.BaseModel{ID: 1}, OpenID: "owner", Role: model.RoleAdmin}
	normalUser = &model.User{BaseModel: model.BaseModel{ID: 2}, OpenID: "student", Role: model.RoleUser}
)

// newFileHeader 构造一个经过 multipart 解析的文件头
func newFileHeader(t *testing.T, field, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File[field][0]
}
