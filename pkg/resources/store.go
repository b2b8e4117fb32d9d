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

package resources

import (
	"fmt"
	"sort"

	vsrerrors "github.com/NVIDIA/serializer-registry/pkg/errors"
	"github.com/NVIDIA/serializer-registry/pkg/registry"
)

type collection struct {
	order []string
	items map[string]any
}

func (c *collection) add(id string, item any) {
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = item
}

// Store is a read-only, in-memory set of resource instances keyed by
// resource name and code. It is safe for concurrent reads.
type Store struct {
	collections map[string]*collection
}

// NewStore indexes the given records. Submissions are reachable under both
// of their resource names.
func NewStore(submissions []Submission, speakers []Speaker) *Store {
	subs := &collection{items: make(map[string]any)}
	for _, s := range submissions {
		subs.add(s.Code, s)
	}
	spks := &collection{items: make(map[string]any)}
	for _, s := range speakers {
		spks.add(s.Code, s)
	}

	return &Store{
		collections: map[string]*collection{
			ResourceSubmission:                             subs,
			registry.ResourceName(&SubmissionSerializer{}): subs,
			ResourceSpeaker:                                spks,
		},
	}
}

// Resources returns the resource names the store can serve, sorted.
func (s *Store) Resources() []string {
	names := make([]string, 0, len(s.collections))
	for n := range s.collections {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Has reports whether resource is known to the store.
func (s *Store) Has(resource string) bool {
	_, ok := s.collections[resource]
	return ok
}

// List returns every instance of resource in insertion order.
func (s *Store) List(resource string) ([]any, error) {
	c, ok := s.collections[resource]
	if !ok {
		return nil, unknownResource(resource)
	}
	out := make([]any, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out, nil
}

// Get returns the instance of resource with the given code.
func (s *Store) Get(resource, id string) (any, error) {
	c, ok := s.collections[resource]
	if !ok {
		return nil, unknownResource(resource)
	}
	item, ok := c.items[id]
	if !ok {
		return nil, vsrerrors.NewWithContext(vsrerrors.ErrCodeNotFound,
			fmt.Sprintf("%s %q not found", resource, id),
			map[string]any{"resource": resource, "id": id})
	}
	return item, nil
}

func unknownResource(resource string) error {
	return vsrerrors.NewWithContext(vsrerrors.ErrCodeNotFound,
		fmt.Sprintf("unknown resource %q", resource),
		map[string]any{"resource": resource})
}

// SampleStore returns a small conference program used by the service when
// no other data source is configured.
func SampleStore() *Store {
	return NewStore(
		[]Submission{
			{
				Code:           "A8DKQ3",
				Title:          "Versioned APIs without tears",
				State:          StateConfirmed,
				SubmissionType: "Talk",
				Track:          "Platform",
				Abstract:       "Serving several API versions from one codebase.",
				Speakers:       []string{"JQ8BVR"},
				IsFeatured:     true,
			},
			{
				Code:           "P3LZ7M",
				Title:          "Hands-on schema evolution",
				State:          StateAccepted,
				SubmissionType: "Workshop",
				Track:          "Data",
				Speakers:       []string{"JQ8BVR", "XK2N4T"},
			},
			{
				Code:           "R9YH2C",
				Title:          "An anonymised proposal",
				State:          StateSubmitted,
				SubmissionType: "Talk",
				Speakers:       []string{"XK2N4T"},
				IsAnonymised:   true,
			},
		},
		[]Speaker{
			{
				Code:        "JQ8BVR",
				Name:        "Ada Example",
				Biography:   "Maintains a conference scheduling API.",
				Submissions: []string{"A8DKQ3", "P3LZ7M"},
			},
			{
				Code:        "XK2N4T",
				Name:        "Sam Sample",
				Biography:   "Works on data pipelines.",
				Submissions: []string{"P3LZ7M", "R9YH2C"},
			},
		},
	)
}
