package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUser_UnmarshalJSON_DistinguishesAbsentFromZero(t *testing.T) {
	var u User
	err := json.Unmarshal([]byte(`{"first_name":"A","tokens":0,"active_status":false}`), &u)
	require.NoError(t, err)

	require.NotNil(t, u.FirstName)
	require.Equal(t, "A", *u.FirstName)
	require.NotNil(t, u.Tokens)
	require.Equal(t, int64(0), *u.Tokens)
	require.NotNil(t, u.ActiveStatus)
	require.False(t, *u.ActiveStatus)

	require.Nil(t, u.LastName)
	require.Nil(t, u.Email)
	require.Nil(t, u.EmailStatus)
	require.Nil(t, u.CompanyID)
}

func TestUser_Record_ReturnsOriginalJSON(t *testing.T) {
	src := `{"id":7,"last_name":"B","unknown_key":true}`
	var u User
	require.NoError(t, json.Unmarshal([]byte(src), &u))
	require.Equal(t, src, u.Record())
}

func TestUser_Record_FallsBackToMarshal(t *testing.T) {
	name := "A"
	u := &User{FirstName: &name}
	require.Contains(t, u.Record(), `"first_name":"A"`)
}

func TestCompany_UnmarshalJSON_And_Record(t *testing.T) {
	src := `{"id":1,"name":"Acme","top_up":10,"email_status":true}`
	var c Company
	require.NoError(t, json.Unmarshal([]byte(src), &c))

	require.NotNil(t, c.ID)
	require.Equal(t, int64(1), *c.ID)
	require.NotNil(t, c.Name)
	require.Equal(t, "Acme", *c.Name)
	require.NotNil(t, c.TopUp)
	require.Equal(t, int64(10), *c.TopUp)
	require.NotNil(t, c.EmailStatus)
	require.True(t, *c.EmailStatus)
	require.Equal(t, src, c.Record())
}
