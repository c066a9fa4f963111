package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestReportRender(t *testing.T) {
	rep := Report{
		Input: "day05.dat",
		Answers: []Answer{
			{Part: 1, Value: 3, Took: 1500 * time.Microsecond},
			{Part: 2, Value: 14, Took: 2 * time.Millisecond},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, rep.Render(&buf, "text"))
	assert.Equal(t, "Part 1: 3\nPart 2: 14\n", buf.String())

	rep.timing = true
	buf.Reset()
	require.NoError(t, rep.Render(&buf, "text"))
	assert.Equal(t, "Part 1: 3\nPart 1 took: 1.5ms\nPart 2: 14\nPart 2 took: 2ms\n", buf.String())

	buf.Reset()
	require.NoError(t, rep.Render(&buf, "yaml"))
	out := buf.String()
	assert.Contains(t, out, "input: day05.dat\n")
	assert.Contains(t, out, "took: 1.5ms\n")
	assert.Contains(t, out, "took: 2ms\n")

	var decoded Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, rep.Answers, decoded.Answers)

	assert.EqualError(t, rep.Render(&buf, "xml"), `unknown format "xml"`)
}
