// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expo

import (
	"net/http"

	cclog "github.com/ClusterCockpit/cc-lib/v2/ccLogger"
	"github.com/ClusterCockpit/cc-metrics/pkg/tsz/store"
)

// Handler returns an http.Handler that serves a fresh text snapshot of
// s on every request. It is built on the standard library's
// net/http.Handler directly so it can be registered on whatever mux
// the embedding application already uses, without pulling in a
// routing framework just for one endpoint.
func Handler(s *store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := WriteText(w, s); err != nil {
			cclog.Errorf("[tsz/expo]> failed writing exposition response: %s", err)
		}
	})
}
