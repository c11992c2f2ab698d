package editor

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setProcs(t *testing.T, procs []Process) {
	t.Helper()
	data, err := json.Marshal(procs)
	require.NoError(t, err)
	t.Setenv(testDataEnv, string(data))
}

func TestOpenMatchesProjectRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "MyWorld")
	other := filepath.Join(t.TempDir(), "OtherWorld")
	setProcs(t, []Process{
		{PID: 40, Command: "Unity", CWD: other},
		{PID: 31, Command: "Unity", CWD: root + string(filepath.Separator)},
		{PID: 12, Command: "bash", CWD: root},
		{PID: 7, Command: "/opt/Unity/Editor/Unity", CWD: root},
	})

	procs, err := Open(root)
	require.NoError(t, err)
	require.Len(t, procs, 2)
	require.Equal(t, 7, procs[0].PID)
	require.Equal(t, 31, procs[1].PID)
}

func TestOpenNoEditor(t *testing.T) {
	setProcs(t, []Process{{PID: 1, Command: "init", CWD: "/"}})
	procs, err := Open(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, procs)
}

func TestOpenBadTestData(t *testing.T) {
	t.Setenv(testDataEnv, "{")
	_, err := Open(t.TempDir())
	require.Error(t, err)
}

func TestIsUnity(t *testing.T) {
	cases := map[string]bool{
		"Unity":            true,
		"Unity.exe":        true,
		"Unity Editor":     true,
		"UnityHub":         false,
		"unityshadercompi": false,
		"":                 false,
	}
	for cmd, want := range cases {
		require.Equalf(t, want, isUnity(cmd), "isUnity(%q)", cmd)
	}
}
