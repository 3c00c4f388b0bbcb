package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/SlotMachine_Go/internal/domain"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusCreated, SuccessResponse{Message: "ok"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"ok"}`, rec.Body.String())
}

func TestPutBuffer_DropsOversized(t *testing.T) {
	big := bytes.NewBuffer(make([]byte, 0, maxPooledBufferSize+1))
	big.WriteString("stale")
	putBuffer(big)
	// Oversized buffers are not reset or reused
	assert.Equal(t, "stale", big.String())

	small := getBuffer()
	small.WriteString("data")
	putBuffer(small)
	assert.Zero(t, small.Len())
}

func TestMapServiceError_LocalStoreFull(t *testing.T) {
	status, msg := mapServiceErrorToUserMessage(fmt.Errorf("%w: cookie slotPlayer is 5000 bytes", domain.ErrLocalStoreFull))
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
	assert.Equal(t, ErrMsgLocalStoreFull, msg)
}
