//go:build go1.18

package hashmap_test

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/memutil/pkg/hashmap"
)

func TestMap(t *testing.T) {
	Convey("Given an empty map", t, func() {
		m := hashmap.New[string, int](8)

		So(m.Count(), ShouldEqual, 0)
		So(m.Has("answer"), ShouldBeFalse)

		Convey("When a mapping is inserted", func() {
			So(m.Put("answer", 42), ShouldBeTrue)

			Convey("Then it can be found", func() {
				So(m.Has("answer"), ShouldBeTrue)
				So(m.Count(), ShouldEqual, 1)

				v, ok := m.Get("answer")
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, 42)
			})

			Convey("Then an update keeps one entry", func() {
				So(m.Put("answer", 43), ShouldBeFalse)
				So(m.Count(), ShouldEqual, 1)

				v, _ := m.Get("answer")
				So(v, ShouldEqual, 43)
			})

			Convey("Then deleting it leaves the map empty", func() {
				So(m.Delete("answer"), ShouldBeTrue)
				So(m.Delete("answer"), ShouldBeFalse)
				So(m.Has("answer"), ShouldBeFalse)
				So(m.Count(), ShouldEqual, 0)
			})
		})

		Convey("When GetOrAdd sees a present and an absent key", func() {
			m.Put("present", 1)

			v, added := m.GetOrAdd("present", 2)
			So(added, ShouldBeFalse)
			So(v, ShouldEqual, 1)

			v, added = m.GetOrAdd("absent", 3)
			So(added, ShouldBeTrue)
			So(v, ShouldEqual, 3)
			So(m.Count(), ShouldEqual, 2)
		})
	})
}

func TestMapGrowth(t *testing.T) {
	const n = 10000

	Convey("Given a map seeded far below its final size", t, func() {
		m := hashmap.New[int, int](8)

		for i := 0; i < n; i++ {
			So(m.Put(i, i*i), ShouldBeTrue)
		}

		Convey("Then every mapping survives the rehashes", func() {
			So(m.Count(), ShouldEqual, n)

			for i := 0; i < n; i++ {
				v, ok := m.Get(i)
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, i*i)
			}
		})

		Convey("Then deleting half keeps the other half intact", func() {
			for i := 0; i < n; i += 2 {
				So(m.Delete(i), ShouldBeTrue)
			}

			So(m.Count(), ShouldEqual, n/2)
			for i := 0; i < n; i++ {
				So(m.Has(i), ShouldEqual, i%2 == 1)
			}
		})

		Convey("Then Each visits every element exactly once", func() {
			seen := make(map[int]int, n)
			m.Each(func(k, v int) bool {
				seen[k]++
				So(v, ShouldEqual, k*k)
				return true
			})

			So(len(seen), ShouldEqual, n)
			for _, count := range seen {
				So(count, ShouldEqual, 1)
			}
		})

		Convey("Then Clear empties it without shrinking", func() {
			m.Clear()

			So(m.Count(), ShouldEqual, 0)
			So(m.Capacity(), ShouldBeGreaterThanOrEqualTo, n)
			for i := 0; i < n; i += 97 {
				So(m.Has(i), ShouldBeFalse)
			}
		})
	})
}

func TestMapStringKeys(t *testing.T) {
	Convey("Given string keys that collide across groups", t, func() {
		m := hashmap.New[string, int](4)

		const n = 500
		for i := 0; i < n; i++ {
			m.Put(fmt.Sprintf("key-%04d", i), i)
		}

		Convey("Then lookups and deletes stay coherent", func() {
			So(m.Count(), ShouldEqual, n)

			for i := 0; i < n; i += 3 {
				So(m.Delete(fmt.Sprintf("key-%04d", i)), ShouldBeTrue)
			}
			for i := 0; i < n; i++ {
				v, ok := m.Get(fmt.Sprintf("key-%04d", i))
				if i%3 == 0 {
					So(ok, ShouldBeFalse)
				} else {
					So(ok, ShouldBeTrue)
					So(v, ShouldEqual, i)
				}
			}
		})
	})
}
