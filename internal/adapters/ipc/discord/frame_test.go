package discord

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameRoundTrip(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, writeFrame(&buf, opHandshake, handshakeRequest{Version: 1, ClientID: "123"}))

	op, body, err := readFrame(&buf)
	require.NoError(t, err)
	assert.Equal(t, opHandshake, op)
	assert.JSONEq(t, `{"v":1,"client_id":"123"}`, string(body))
}

func TestFrameHeaderIsLittleEndian(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeFrame(&buf, opFrame, map[string]string{}))

	raw := buf.Bytes()
	require.GreaterOrEqual(t, len(raw), 8)
	assert.Equal(t, uint32(opFrame), binary.LittleEndian.Uint32(raw[0:4]))
	assert.Equal(t, uint32(len(raw)-8), binary.LittleEndian.Uint32(raw[4:8]))
}

func TestReadFrameRejectsOversizedBody(t *testing.T) {
	header := make([]byte, 8)
	binary.LittleEndian.PutUint32(header[0:4], uint32(opFrame))
	binary.LittleEndian.PutUint32(header[4:8], maxFrameSize+1)

	_, _, err := readFrame(bytes.NewReader(header))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestReadFrameShortBody(t *testing.T) {
	var buf bytes.Buffer
	header := make([]byte, 8)
	binary.LittleEndian.PutUint32(header[0:4], uint32(opFrame))
	binary.LittleEndian.PutUint32(header[4:8], 100)
	buf.Write(header)
	buf.WriteString("short")

	_, _, err := readFrame(&buf)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read frame body")
}
