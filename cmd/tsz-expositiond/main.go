// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command tsz-expositiond is a minimal demonstration process: it wires
// a tsz store, a handful of example metrics, a synthetic load
// generator, and a plain net/http exposition endpoint. It exists to
// give the tsz core a runnable embedding; it is intentionally small,
// with no auth, TLS, or multi-module startup graph.
package main

import (
	"context"
	"flag"
	"math/rand"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cclog "github.com/ClusterCockpit/cc-lib/v2/ccLogger"
	"github.com/ClusterCockpit/cc-metrics/pkg/tsz"
	"github.com/ClusterCockpit/cc-metrics/pkg/tsz/expo"
	"github.com/ClusterCockpit/cc-metrics/pkg/tsz/store"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:8981", "address the exposition endpoint listens on")
	numShards := flag.Int("num-shards", store.DefaultNumShards, "number of store shards")
	logLevel := flag.String("loglevel", "info", "log level: err, warn, info, debug")
	flag.Parse()

	cclog.Init(*logLevel, true)

	s := store.NewWithShards(*numShards)
	stop := startLoadGenerator(s)
	defer stop()

	server := &http.Server{
		Addr:         *addr,
		Handler:      http.HandlerFunc(routeRequests(s)),
		ReadTimeout:  20 * time.Second,
		WriteTimeout: 20 * time.Second,
	}

	listener, err := net.Listen("tcp", *addr)
	if err != nil {
		cclog.Fatalf("tsz-expositiond: starting listener failed: %s", err)
	}

	go func() {
		cclog.Infof("tsz-expositiond: serving exposition endpoint on %s/metrics", *addr)
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			cclog.Fatalf("tsz-expositiond: server failed: %s", err)
		}
	}()

	waitForShutdownSignal()
	cclog.Info("tsz-expositiond: shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		cclog.Errorf("tsz-expositiond: graceful shutdown failed: %s", err)
	}
}

func routeRequests(s *store.Store) http.HandlerFunc {
	expositionHandler := expo.Handler(s)
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			expositionHandler.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	}
}

func waitForShutdownSignal() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}

// startLoadGenerator declares the example metrics this demo exposes
// and drives them from a background goroutine until the returned stop
// function is called, mimicking the sort of instrumentation a real
// embedding application would perform directly from its own request
// handlers and worker loops.
func startLoadGenerator(s *store.Store) (stop func()) {
	hostSchema := tsz.MustNewSchema("host")
	entity := tsz.NewEntity(hostSchema.MustMakeFieldMap(tsz.StringValue("demo-node")))

	requestKind := tsz.MustNewSchema("kind")
	requestsTotal := tsz.NewCounterForEntity(s, entity, "requests_total", requestKind)

	noFields := tsz.MustNewSchema()
	queueDepth := tsz.NewGaugeForEntity(s, entity, "queue_depth", noFields)
	buildVersion := tsz.NewStringMetricForEntity(s, entity, "build_version", noFields)
	buildVersion.Set("v0.1.0")

	requestLatency := tsz.NewEventMetricForEntity(s, entity, "request_latency_ms", noFields, tsz.DefaultOptions())

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		kinds := []string{"get", "put", "delete"}
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				kind := kinds[rand.Intn(len(kinds))]
				requestsTotal.Increment(tsz.StringValue(kind))
				queueDepth.Set(float64(rand.Intn(32)))

				lr := requestLatency.NewLatencyRecorder()
				time.Sleep(time.Duration(rand.Intn(5)) * time.Millisecond)
				lr.Stop()
			}
		}
	}()

	return func() { close(done) }
}
