package cmd

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReconcileLoop(t *testing.T) {
	var requests, failures int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&requests, 1) == 1 {
			atomic.AddInt32(&failures, 1)
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	cfgPath := filepath.Join(t.TempDir(), "sidecar.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("update_interval: 1\n"), 0644))

	var reloads int32
	tick := func() error {
		return postJSON(srv.URL, "/datasources", map[string]interface{}{"name": "Foo"}, Credentials{})
	}
	reload := func() error {
		atomic.AddInt32(&reloads, 1)
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		runReconcileLoop(50*time.Millisecond, cfgPath, reload, tick)
	}()

	// the first tick fails with a 500; the loop must keep pushing regardless
	require.Eventually(t, func() bool { return atomic.LoadInt32(&requests) >= 2 },
		3*time.Second, 10*time.Millisecond)
	assert.EqualValues(t, 1, atomic.LoadInt32(&failures))

	// a config change reloads the desired state and pushes again
	before := atomic.LoadInt32(&requests)
	require.NoError(t, os.WriteFile(cfgPath, []byte("update_interval: 2\n"), 0644))
	require.Eventually(t, func() bool { return atomic.LoadInt32(&reloads) >= 1 },
		3*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return atomic.LoadInt32(&requests) > before },
		3*time.Second, 10*time.Millisecond)

	// SIGINT is the only exit path
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("loop did not stop on SIGINT")
	}
}
