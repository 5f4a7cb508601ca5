package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePatientStoresNullOptionalFields(t *testing.T) {
	r, _ := newTestRouter()

	w := doRequest(t, r, http.MethodPost, "/patients", map[string]string{
		"firstName":   "Alice",
		"lastName":    "Smith",
		"dateOfBirth": "1990-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "pat1", body["id"])
	assert.Equal(t, "Alice", body["firstName"])

	// Absent optional fields must come back as explicit nulls.
	contact, present := body["contactNumber"]
	assert.True(t, present)
	assert.Nil(t, contact)
	email, present := body["email"]
	assert.True(t, present)
	assert.Nil(t, email)
}

func TestCreatePatientMissingRequiredFields(t *testing.T) {
	r, _ := newTestRouter()

	w := doRequest(t, r, http.MethodPost, "/patients", map[string]string{"firstName": "X"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, CodeInvalidInput, decodeBody(t, w)["code"])
}

func TestCreatePatientRejectsEmptyRequiredField(t *testing.T) {
	r, _ := newTestRouter()

	w := doRequest(t, r, http.MethodPost, "/patients", map[string]string{
		"firstName":   "Alice",
		"lastName":    "",
		"dateOfBirth": "1990-01-01",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, CodeInvalidInput, decodeBody(t, w)["code"])
}

func TestCreatePatientIDsAreUnique(t *testing.T) {
	r, _ := newTestRouter()

	seen := map[string]bool{}
	for i := 0; i < 4; i++ {
		w := doRequest(t, r, http.MethodPost, "/patients", map[string]string{
			"firstName":   "A",
			"lastName":    "B",
			"dateOfBirth": "1990-01-01",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		id := decodeBody(t, w)["id"].(string)
		assert.False(t, seen[id], "id %s issued twice", id)
		seen[id] = true
	}
}

func TestListPatientsInsertionOrder(t *testing.T) {
	r, _ := newTestRouter()

	for _, name := range []string{"Alice", "Bob", "Carol"} {
		w := doRequest(t, r, http.MethodPost, "/patients", map[string]string{
			"firstName":   name,
			"lastName":    "Smith",
			"dateOfBirth": "1990-01-01",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(t, r, http.MethodGet, "/patients", nil)
	require.Equal(t, http.StatusOK, w.Code)

	list := decodeList(t, w)
	require.Len(t, list, 3)
	assert.Equal(t, "Alice", list[0]["firstName"])
	assert.Equal(t, "Bob", list[1]["firstName"])
	assert.Equal(t, "Carol", list[2]["firstName"])
}

func TestGetPatientNotFound(t *testing.T) {
	r, _ := newTestRouter()

	w := doRequest(t, r, http.MethodGet, "/patients/pat1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, CodePatientNotFound, decodeBody(t, w)["code"])
}

func TestUpdatePatientPartialPreservesOtherFields(t *testing.T) {
	r, _ := newTestRouter()

	w := doRequest(t, r, http.MethodPost, "/patients", map[string]string{
		"firstName":   "Alice",
		"lastName":    "Smith",
		"dateOfBirth": "1990-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodPut, "/patients/pat1", map[string]string{"email": "new@x.com"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "new@x.com", body["email"])
	assert.Equal(t, "Alice", body["firstName"])
	assert.Equal(t, "Smith", body["lastName"])
	assert.Equal(t, "1990-01-01", body["dateOfBirth"])
	assert.Nil(t, body["contactNumber"])
}

func TestUpdatePatientEmptyPayloadIsNoOp(t *testing.T) {
	r, _ := newTestRouter()

	w := doRequest(t, r, http.MethodPost, "/patients", map[string]string{
		"firstName":   "Alice",
		"lastName":    "Smith",
		"dateOfBirth": "1990-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	before := decodeBody(t, w)

	w = doRequest(t, r, http.MethodPut, "/patients/pat1", map[string]string{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before, decodeBody(t, w))
}

func TestUpdatePatientNotFound(t *testing.T) {
	r, _ := newTestRouter()

	w := doRequest(t, r, http.MethodPut, "/patients/pat1", map[string]string{"email": "a@b.c"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, CodePatientNotFound, decodeBody(t, w)["code"])
}

func TestDeletePatientTwice(t *testing.T) {
	r, _ := newTestRouter()

	w := doRequest(t, r, http.MethodPost, "/patients", map[string]string{
		"firstName":   "Alice",
		"lastName":    "Smith",
		"dateOfBirth": "1990-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/patients/pat1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	w = doRequest(t, r, http.MethodDelete, "/patients/pat1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, CodePatientNotFound, decodeBody(t, w)["code"])
}
