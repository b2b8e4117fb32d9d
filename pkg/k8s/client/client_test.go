// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package client

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetSingleton() {
	clientOnce = sync.Once{}
	cachedClient = nil
	cachedConfig = nil
	clientErr = nil
}

func TestResolveKubeconfig(t *testing.T) {
	t.Run("explicit wins over env", func(t *testing.T) {
		t.Setenv(EnvKubeconfig, "/from/env")
		assert.Equal(t, "/explicit", resolveKubeconfig("/explicit"))
	})

	t.Run("env when no explicit path", func(t *testing.T) {
		t.Setenv(EnvKubeconfig, "/from/env")
		assert.Equal(t, "/from/env", resolveKubeconfig(""))
	})

	t.Run("home config when present", func(t *testing.T) {
		home := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(home, ".kube"), 0o755))
		cfg := filepath.Join(home, ".kube", "config")
		require.NoError(t, os.WriteFile(cfg, []byte("apiVersion: v1\n"), 0o600))

		t.Setenv(EnvKubeconfig, "")
		t.Setenv("HOME", home)
		assert.Equal(t, cfg, resolveKubeconfig(""))
	})

	t.Run("in-cluster when nothing found", func(t *testing.T) {
		t.Setenv(EnvKubeconfig, "")
		t.Setenv("HOME", t.TempDir())
		assert.Empty(t, resolveKubeconfig(""))
	})
}

func TestBuildKubeClient_Errors(t *testing.T) {
	tests := []struct {
		name     string
		arg      string
		env      string
		contains string
	}{
		{
			name:     "explicit missing path",
			arg:      "/nonexistent/path/to/kubeconfig",
			contains: "failed to build kube config",
		},
		{
			name:     "env missing path",
			env:      "/nonexistent/env/kubeconfig",
			contains: "failed to build kube config",
		},
		{
			name:     "explicit garbage file",
			arg:      writeGarbage(t),
			contains: "failed to build kube config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvKubeconfig, tt.env)
			_, _, err := BuildKubeClient(tt.arg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func writeGarbage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kubeconfig")
	require.NoError(t, os.WriteFile(path, []byte("invalid yaml content"), 0o600))
	return path
}

func TestBuildKubeClient_ValidKubeconfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kubeconfig")
	content := `apiVersion: v1
kind: Config
clusters:
- name: test
  cluster:
    server: https://127.0.0.1:6443
contexts:
- name: test
  context:
    cluster: test
    user: test
current-context: test
users:
- name: test
  user:
    token: abc
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cs, cfg, err := BuildKubeClient(path)
	require.NoError(t, err)
	assert.NotNil(t, cs)
	assert.Equal(t, "https://127.0.0.1:6443", cfg.Host)
}

func TestGetKubeClient_Singleton(t *testing.T) {
	resetSingleton()
	t.Cleanup(resetSingleton)
	t.Setenv(EnvKubeconfig, "/nonexistent/kubeconfig")

	c1, cfg1, err1 := GetKubeClient()
	c2, cfg2, err2 := GetKubeClient()

	require.Error(t, err1)
	assert.Equal(t, err1, err2)
	assert.Equal(t, c1, c2)
	assert.Equal(t, cfg1, cfg2)
}

func TestGetKubeClient_Concurrent(t *testing.T) {
	resetSingleton()
	t.Cleanup(resetSingleton)
	t.Setenv(EnvKubeconfig, "/nonexistent/kubeconfig")

	const n = 10
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = GetKubeClient()
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		assert.Equal(t, errs[0], errs[i])
	}
}
