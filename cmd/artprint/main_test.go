package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kioskworks/artprint/config"
)

func TestHeaderField(t *testing.T) {
	assert.Equal(t, "ALICE", headerField("  alice ", "Participant"))
	assert.Equal(t, "PARTICIPANT", headerField("", "Participant"))
	assert.Equal(t, "PARTICIPANT", headerField("   ", "Participant"))
	assert.Equal(t, "", headerField("", ""))
}

func TestOpenTransportUnknown(t *testing.T) {
	opts.transport = "carrier-pigeon"
	defer func() { opts.transport = "tcp" }()

	_, err := openTransport(config.Default())
	assert.Error(t, err)
}
