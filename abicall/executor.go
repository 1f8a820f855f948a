// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package abicall

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/d13co/algorand.observer/config"
	"github.com/d13co/algorand.observer/daemon/algod/api/client/models"
	"github.com/d13co/algorand.observer/data/abi"
	"github.com/d13co/algorand.observer/data/basics"
	"github.com/d13co/algorand.observer/data/transactions"
	"github.com/d13co/algorand.observer/logging"
	"github.com/d13co/algorand.observer/serr"
)

// Stage is the position of an invocation in the execution pipeline.
type Stage int32

const (
	// Idle means the invocation has not started.
	Idle Stage = iota
	// Building means the group is being validated and assembled.
	Building
	// AwaitingSignature means the group is with the signer.
	AwaitingSignature
	// Submitting means the signed group is being sent to the node.
	Submitting
	// AwaitingConfirmation means the node is being polled for the call.
	AwaitingConfirmation
	// Completed means the call was confirmed.
	Completed
	// Failed means the invocation stopped with an error.
	Failed
)

var stageNames = [...]string{"idle", "building", "awaiting-signature", "submitting", "awaiting-confirmation", "completed", "failed"}

func (s Stage) String() string {
	if s >= 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("Stage(%d)", int32(s))
}

var (
	// ErrSignerRejected is returned when the signer fails or returns
	// something other than the group it was given, signed.
	ErrSignerRejected = errors.New("signer rejected the group")

	// ErrSubmissionFailed is returned when the node refuses the group or
	// drops it from its pool.
	ErrSubmissionFailed = errors.New("submission failed")

	// ErrConfirmationTimeout is returned when the call is not confirmed
	// within the executor's timeout.
	ErrConfirmationTimeout = errors.New("confirmation timed out")
)

const defaultPollInterval = time.Second

// Signer signs a whole group at once.
type Signer interface {
	SignGroup(ctx context.Context, txns []transactions.Transaction) ([]transactions.SignedTxn, error)
}

// Node is the subset of the algod API the executor needs.
type Node interface {
	SuggestedParams(ctx context.Context) (models.TransactionParametersResponse, error)
	SendRawTransactionGroup(ctx context.Context, txgroup []transactions.SignedTxn) (string, error)
	PendingTransactionInformation(ctx context.Context, txid string) (transactions.PendingRecord, error)
}

// Executor runs invocations through building, signing, submission and
// confirmation. It never resubmits: every failure ends the invocation.
type Executor struct {
	Node   Node
	Signer Signer

	// Memory, when set, receives the id of every application created.
	Memory *AppIDMemory

	// Timeout bounds the wait for confirmation; zero or less fails the
	// wait without polling.
	Timeout      time.Duration
	PollInterval time.Duration

	ValidRounds uint64
	Proto       config.ConsensusParams

	Log     logging.Logger
	Metrics *Metrics
}

// Result describes a confirmed invocation.
type Result struct {
	TxID    string
	GroupID string
	Plan    *Plan

	ConfirmedRound basics.Round

	// AppID is the called application, or the created one for a creation
	// call.
	AppID basics.AppIndex

	Return     interface{}
	HasReturn  bool
	ReturnJSON string

	Record transactions.PendingRecord
}

// run carries the per-invocation state of the pipeline.
type run struct {
	e       *Executor
	inv     Invocation
	log     logging.Logger
	stage   Stage
	entered time.Time
	report  *atomic.Int32
}

func (r *run) enter(s Stage) {
	r.e.Metrics.observeStage(r.stage, r.entered)
	r.stage = s
	r.entered = time.Now()
	if r.report != nil {
		r.report.Store(int32(s))
	}
	r.log.With("stage", s.String()).Debugf("invocation entered %v", s)
}

func (r *run) fail(err error) error {
	at := r.stage
	r.enter(Failed)
	r.e.Metrics.outcome("failed")
	r.log.With("stage", at.String()).Warnf("invocation failed: %v", err)
	return serr.Extend(err, "stage", at.String())
}

// Execute runs one invocation to completion. Cancelling ctx aborts the
// invocation at whatever stage it has reached and returns ctx.Err().
func (e *Executor) Execute(ctx context.Context, inv Invocation) (*Result, error) {
	return e.execute(ctx, inv, nil)
}

func (e *Executor) execute(ctx context.Context, inv Invocation, report *atomic.Int32) (*Result, error) {
	log := e.Log
	if log == nil {
		log = logging.Base()
	}
	r := &run{
		e:       e,
		inv:     inv,
		log:     log.With("invocation", uuid.New().String()).With("method", inv.Method.Name),
		entered: time.Now(),
		report:  report,
	}

	r.enter(Building)
	plan, err := r.build(ctx)
	if err != nil {
		return nil, r.fail(err)
	}
	r.log = r.log.With("group", plan.GroupID.String())

	r.enter(AwaitingSignature)
	signed, err := r.sign(ctx, plan)
	if err != nil {
		return nil, r.fail(err)
	}

	r.enter(Submitting)
	txid := signed[plan.CallIndex].ID().String()
	if _, err := e.Node.SendRawTransactionGroup(ctx, signed); err != nil {
		if ctx.Err() != nil {
			return nil, r.fail(ctx.Err())
		}
		return nil, r.fail(fmt.Errorf("%w: %w", ErrSubmissionFailed, err))
	}
	r.log.Infof("submitted group of %d, call %s", len(signed), txid)

	r.enter(AwaitingConfirmation)
	rec, err := r.waitForConfirmation(ctx, txid)
	if err != nil {
		return nil, r.fail(serr.Extend(err, "txid", txid))
	}

	res := &Result{
		TxID:           txid,
		GroupID:        plan.GroupID.String(),
		Plan:           plan,
		ConfirmedRound: rec.ConfirmedRound,
		AppID:          transactions.MakeView(rec).AppID(),
		Record:         rec,
	}
	r.decodeReturn(res)

	if inv.IsCreation() && res.AppID != 0 && e.Memory != nil && ctx.Err() == nil {
		if err := e.Memory.Remember(res.AppID); err != nil {
			r.log.Warnf("cannot remember created application %d: %v", res.AppID, err)
		}
	}

	r.enter(Completed)
	e.Metrics.outcome("completed")
	r.log.Infof("call %s confirmed in round %d", txid, rec.ConfirmedRound)
	return res, nil
}

func (r *run) build(ctx context.Context) (*Plan, error) {
	// structural errors surface before the node is contacted
	if err := Validate(r.inv); err != nil {
		return nil, err
	}
	resp, err := r.e.Node.SuggestedParams(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("cannot get suggested params: %w", err)
	}
	sp, err := MakeSuggestedParams(resp, r.e.ValidRounds, r.e.Proto)
	if err != nil {
		return nil, err
	}
	return Build(r.inv, sp, r.e.Proto)
}

func (r *run) sign(ctx context.Context, plan *Plan) ([]transactions.SignedTxn, error) {
	signed, err := r.e.Signer.SignGroup(ctx, plan.Group())
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %w", ErrSignerRejected, err)
	}
	if len(signed) != len(plan.Txns) {
		return nil, serr.Wrap(ErrSignerRejected,
			fmt.Sprintf("signer returned %d transactions for a group of %d", len(signed), len(plan.Txns)))
	}
	for i := range signed {
		if signed[i].ID() != plan.Txns[i].ID() {
			return nil, serr.Wrap(ErrSignerRejected,
				fmt.Sprintf("signer altered transaction %d", i), "index", i)
		}
	}
	return signed, nil
}

func (r *run) waitForConfirmation(ctx context.Context, txid string) (transactions.PendingRecord, error) {
	var rec transactions.PendingRecord
	if r.e.Timeout <= 0 {
		return rec, serr.Wrap(ErrConfirmationTimeout, "no time allowed for confirmation")
	}
	interval := r.e.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	wctx, cancel := context.WithTimeout(ctx, r.e.Timeout)
	defer cancel()
	timedOut := func() error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return serr.Wrap(ErrConfirmationTimeout,
			fmt.Sprintf("%s not confirmed after %v", txid, r.e.Timeout))
	}

	for {
		rec, err := r.e.Node.PendingTransactionInformation(wctx, txid)
		switch {
		case wctx.Err() != nil:
			return rec, timedOut()
		case err != nil:
			r.log.Warnf("polling %s: %v", txid, err)
		case rec.PoolError != "":
			return rec, serr.Wrap(ErrSubmissionFailed,
				fmt.Sprintf("%s dropped from the pool: %s", txid, rec.PoolError), "pool-error", rec.PoolError)
		case rec.Confirmed():
			return rec, nil
		}

		select {
		case <-wctx.Done():
			return rec, timedOut()
		case <-time.After(interval):
		}
	}
}

func (r *run) decodeReturn(res *Result) {
	m := r.inv.Method
	v, ok, err := abi.DecodeReturn(m, res.Record.Logs)
	if err != nil {
		r.log.Warnf("cannot decode return value of %s: %v", m.Name, err)
		return
	}
	if !ok {
		return
	}
	res.Return = v
	res.HasReturn = true
	if text, err := abi.ReturnJSON(m, v); err == nil {
		res.ReturnJSON = text
	}
}

// Task is an invocation running on its own goroutine.
type Task struct {
	stage  atomic.Int32
	cancel context.CancelFunc
	g      *errgroup.Group
	res    *Result
}

// Go starts inv in the background. The task ends when the invocation does,
// when ctx is cancelled, or when Cancel is called.
func (e *Executor) Go(ctx context.Context, inv Invocation) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{cancel: cancel}
	t.g, ctx = errgroup.WithContext(ctx)
	t.g.Go(func() error {
		res, err := e.execute(ctx, inv, &t.stage)
		t.res = res
		return err
	})
	return t
}

// Wait blocks until the invocation ends and returns its outcome.
func (t *Task) Wait() (*Result, error) {
	err := t.g.Wait()
	t.cancel()
	return t.res, err
}

// Cancel aborts the invocation.
func (t *Task) Cancel() {
	t.cancel()
}

// Stage returns the stage the invocation has reached.
func (t *Task) Stage() Stage {
	return Stage(t.stage.Load())
}
