package chat

import (
	"context"
	"testing"
)

func TestBroadcaster_DeliversToEveryMember(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	a, aConn := env.newSession("a")
	b, bConn := env.newSession("b")
	join(ctx, a, 1, "alice")
	join(ctx, b, 1, "bob")
	aBase, bBase := len(aConn.sent()), len(bConn.sent())

	env.broadcaster.Broadcast(1, []byte(`{"type":"text"}`))

	if len(aConn.sent()) != aBase+1 || len(bConn.sent()) != bBase+1 {
		t.Errorf("deliveries = %d/%d, want one frame each", len(aConn.sent())-aBase, len(bConn.sent())-bBase)
	}
}

func TestBroadcaster_EmptyRoomIsSuccess(t *testing.T) {
	env := newTestEnv()
	env.broadcaster.Broadcast(99, []byte(`{"type":"text"}`))
}

func TestBroadcaster_EvictsUnreachableSession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	healthy, healthyConn := env.newSession("healthy")
	dead, deadConn := env.newSession("dead")
	join(ctx, healthy, 1, "alice")
	join(ctx, dead, 1, "bob")
	deadConn.sendErr = errPeerGone
	base := len(healthyConn.sent())

	env.broadcaster.Broadcast(1, []byte(`{"type":"text"}`))

	if len(healthyConn.sent()) != base+1 {
		t.Error("healthy member missed the fan-out")
	}
	if dead.State() != StateClosed {
		t.Errorf("dead session state = %v, want closed", dead.State())
	}
	if !deadConn.closed {
		t.Error("dead connection was not closed")
	}

	members := env.registry.Members(1)
	if len(members) != 1 || members[0] != healthy {
		t.Errorf("Members(1) = %v, want only the healthy session", members)
	}
}
