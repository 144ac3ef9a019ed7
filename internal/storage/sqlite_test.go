package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/fintrack/internal/storage"
)

func TestStorage(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Storage Suite")
}

var _ = Describe("DB", func() {
	var (
		ctx  context.Context
		path string
		db   *storage.DB
	)

	BeforeEach(func() {
		ctx = context.Background()
		dir, err := os.MkdirTemp("", "fintrack-storage-*")
		Expect(err).ToNot(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)

		path = filepath.Join(dir, "kv.db")
		db, err = storage.Open(path)
		Expect(err).ToNot(HaveOccurred())
		DeferCleanup(func() { db.Close() })
	})

	It("returns nil with no error for a missing key", func() {
		v, err := db.Get(ctx, "absent")
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(BeNil())
	})

	It("stores, overwrites and removes values", func() {
		Expect(db.Set(ctx, "k", []byte("one"))).To(Succeed())

		v, err := db.Get(ctx, "k")
		Expect(err).ToNot(HaveOccurred())
		Expect(string(v)).To(Equal("one"))

		Expect(db.Set(ctx, "k", []byte("two"))).To(Succeed())
		v, err = db.Get(ctx, "k")
		Expect(err).ToNot(HaveOccurred())
		Expect(string(v)).To(Equal("two"))

		Expect(db.Remove(ctx, "k")).To(Succeed())
		v, err = db.Get(ctx, "k")
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(BeNil())
	})

	It("tolerates removing a key that never existed", func() {
		Expect(db.Remove(ctx, "ghost")).To(Succeed())
	})

	It("keeps data across close and reopen", func() {
		Expect(db.Set(ctx, "session", []byte(`{"id":"user-1"}`))).To(Succeed())
		Expect(db.Close()).To(Succeed())

		reopened, err := storage.Open(path)
		Expect(err).ToNot(HaveOccurred())
		DeferCleanup(func() { reopened.Close() })

		v, err := reopened.Get(ctx, "session")
		Expect(err).ToNot(HaveOccurred())
		Expect(string(v)).To(Equal(`{"id":"user-1"}`))
	})

	It("creates missing parent directories", func() {
		nested := filepath.Join(filepath.Dir(path), "a", "b", "kv.db")
		db2, err := storage.Open(nested)
		Expect(err).ToNot(HaveOccurred())
		DeferCleanup(func() { db2.Close() })

		Expect(db2.Set(ctx, "k", []byte("v"))).To(Succeed())
	})
})

var _ = Describe("Memory", func() {
	var (
		ctx context.Context
		mem *storage.Memory
	)

	BeforeEach(func() {
		ctx = context.Background()
		mem = storage.NewMemory()
	})

	It("follows the same missing-key contract as DB", func() {
		v, err := mem.Get(ctx, "absent")
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(BeNil())
	})

	It("copies values on the way in and out", func() {
		original := []byte("value")
		Expect(mem.Set(ctx, "k", original)).To(Succeed())
		original[0] = 'X'

		got, err := mem.Get(ctx, "k")
		Expect(err).ToNot(HaveOccurred())
		Expect(string(got)).To(Equal("value"))

		got[0] = 'Y'
		again, err := mem.Get(ctx, "k")
		Expect(err).ToNot(HaveOccurred())
		Expect(string(again)).To(Equal("value"))
	})

	It("tracks the key count", func() {
		Expect(mem.Len()).To(BeZero())
		Expect(mem.Set(ctx, "a", nil)).To(Succeed())
		Expect(mem.Set(ctx, "b", []byte("x"))).To(Succeed())
		Expect(mem.Len()).To(Equal(2))
		Expect(mem.Remove(ctx, "a")).To(Succeed())
		Expect(mem.Len()).To(Equal(1))
	})
})
