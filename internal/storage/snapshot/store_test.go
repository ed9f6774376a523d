package snapshot_test

import (
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"sysdash/internal/domain"
	"sysdash/internal/storage/snapshot"
)

var _ = Describe("SnapshotStore", func() {
	It("starts empty", func() {
		Expect(snapshot.NewSnapshotStore().Get()).To(BeNil())
	})

	It("returns whole snapshots under concurrent writers", func() {
		store := snapshot.NewSnapshotStore()
		base := time.Unix(1700000000, 0)

		var wg sync.WaitGroup
		for i := range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				store.Set(&domain.Snapshot{TakenAt: base.Add(time.Duration(i) * time.Second)})
			}()
		}
		wg.Wait()

		Expect(store.Get()).NotTo(BeNil())
		Expect(store.Get().TakenAt).To(BeTemporally(">=", base))
	})

	It("hands back the replaced snapshot on swap", func() {
		store := snapshot.NewSnapshotStore()
		first := &domain.Snapshot{TakenAt: time.Unix(1, 0)}
		second := &domain.Snapshot{TakenAt: time.Unix(2, 0)}

		Expect(store.Swap(first)).To(BeNil())
		Expect(store.Swap(second)).To(BeIdenticalTo(first))
		Expect(store.Get()).To(BeIdenticalTo(second))
	})
})

var _ = Describe("ReportStore", func() {
	It("keeps the last report", func() {
		store := snapshot.NewReportStore()
		store.Set(domain.Report{Interval: time.Second})
		store.Set(domain.Report{Interval: 2 * time.Second})
		Expect(store.Get().Interval).To(Equal(2 * time.Second))
	})
})
