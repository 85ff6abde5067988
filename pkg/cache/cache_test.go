package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || hit || data != nil {
		t.Errorf("Get after Set = (%q, %v, %v), want a plain miss", data, hit, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
	clearer, ok := c.(Clearer)
	if !ok {
		t.Fatal("NullCache should implement Clearer")
	}
	if err := clearer.Clear(ctx); err != nil {
		t.Errorf("Clear error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if _, hit, _ := c.Get(ctx, "artifact:1"); hit {
		t.Fatal("empty cache should miss")
	}

	if err := c.Set(ctx, "artifact:1", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "artifact:1")
	if err != nil || !hit {
		t.Fatalf("Get = hit %v, err %v", hit, err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("Get = %q, want <svg/>", data)
	}

	if err := c.Delete(ctx, "artifact:1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "artifact:1"); hit {
		t.Error("deleted key should miss")
	}
	if err := c.Delete(ctx, "artifact:1"); err != nil {
		t.Errorf("deleting a missing key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(2 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}

	if err := c.Set(ctx, "forever", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("entry without ttl should hit")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	fc := c.(*FileCache)

	path := fc.path("k")
	os.MkdirAll(filepath.Dir(path), 0o755)
	os.WriteFile(path, []byte("not json"), 0o644)

	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit=%v err=%v, want miss", hit, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, _ := NewFileCache(dir)

	for _, k := range []string{"a", "b", "c"} {
		c.Set(ctx, k, []byte(k), 0)
	}
	if err := c.(Clearer).Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if _, hit, _ := c.Get(ctx, k); hit {
			t.Errorf("%s survived Clear", k)
		}
	}
	if _, err := os.Stat(dir); err != nil {
		t.Error("Clear should keep the cache directory")
	}
}

func TestHash(t *testing.T) {
	// sha256("hello")
	const want = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if got := Hash([]byte("hello")); got != want {
		t.Errorf("Hash(hello) = %s, want %s", got, want)
	}
	if Hash([]byte("world")) == want {
		t.Error("different inputs should produce different hashes")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	tk := k.TableKey([]byte(`{"ff0000":1}`))
	if tk != "table:"+Hash([]byte(`{"ff0000":1}`)) {
		t.Errorf("TableKey unexpected: %s", tk)
	}

	base := ArtifactKeyOpts{Format: "svg", Limit: 200, Width: 960, Height: 500}
	ak1 := k.ArtifactKey("hash123", base)
	if ak1 != k.ArtifactKey("hash123", base) {
		t.Error("ArtifactKey should be deterministic")
	}

	variants := []ArtifactKeyOpts{
		{Format: "png", Limit: 200, Width: 960, Height: 500},
		{Format: "svg", Limit: 100, Width: 960, Height: 500},
		{Format: "svg", Limit: 200, Width: 800, Height: 500},
		{Format: "svg", Limit: 200, Width: 960, Height: 500, Title: "x"},
		{Format: "svg", Limit: 200, Width: 960, Height: 500, Background: "#000"},
	}
	for _, v := range variants {
		if k.ArtifactKey("hash123", v) == ak1 {
			t.Errorf("ArtifactKeyOpts %+v should produce a different key", v)
		}
	}
	if k.ArtifactKey("hash456", base) == ak1 {
		t.Error("Different table hashes should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "v1:")

	tk := scoped.TableKey([]byte("x"))
	if tk != "v1:"+inner.TableKey([]byte("x")) {
		t.Errorf("ScopedKeyer TableKey unexpected: %s", tk)
	}

	ak := scoped.ArtifactKey("h", ArtifactKeyOpts{Format: "svg"})
	if len(ak) < 15 || ak[:3] != "v1:" {
		t.Errorf("ScopedKeyer ArtifactKey should be prefixed: %s", ak)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.TableKey([]byte("x"))
	if key != "prefix:table:"+Hash([]byte("x")) {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	c, err := Open(ctx, Options{})
	if err != nil {
		t.Fatalf("Open(default): %v", err)
	}
	if _, ok := c.(NullCache); !ok {
		t.Errorf("default backend = %T, want NullCache", c)
	}

	dir := t.TempDir()
	c, err = Open(ctx, Options{Backend: "file", Dir: dir})
	if err != nil {
		t.Fatalf("Open(file): %v", err)
	}
	if fc, ok := c.(*FileCache); !ok || fc.Dir() != dir {
		t.Errorf("file backend = %T", c)
	}

	_, err = Open(ctx, Options{Backend: "memcached"})
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Open(memcached) error = %v, want ErrUnknownBackend", err)
	}
}
