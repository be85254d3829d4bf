package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nativemen/teach-rs-xw/internal/cli"
	"github.com/nativemen/teach-rs-xw/internal/logging"
)

func TestFixedVar(t *testing.T) {
	t.Cleanup(logging.Reset)

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	require.Equal(t, 0, cli.Run(cmd, []string{"--var", "20"}, &errOut), errOut.String())

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, len(samples()))
	assert.Equal(t, "Const(5) with Var = 20 ==> 5", lines[0])
	assert.Equal(t, "Mul(Var, Const(12)) with Var = 20 ==> 240", lines[5])
	assert.Equal(t, "Div(Var, Const(0)) with Var = 20 ==> none", lines[6])
	assert.Equal(t, "Sigma(Const(1), Const(5)) with Var = 20 ==> 15", lines[9])
}

func TestRandomVar(t *testing.T) {
	t.Cleanup(logging.Reset)

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	require.Equal(t, 0, cli.Run(cmd, nil, &errOut), errOut.String())
	assert.Equal(t, len(samples()), strings.Count(out.String(), "\n"))
}
