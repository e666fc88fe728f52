package mesh

import "testing"

func TestAddressKind(t *testing.T) {
	tests := []struct {
		name string
		addr Address
		want AddressKind
	}{
		{"unassigned", 0x0000, KindUnassigned},
		{"first unicast", 0x0001, KindUnicast},
		{"last unicast", 0x7FFF, KindUnicast},
		{"first virtual", 0x8000, KindVirtual},
		{"last virtual", 0xBFFF, KindVirtual},
		{"first group", 0xC000, KindGroup},
		{"all proxies", AllProxies, KindGroup},
		{"all friends", AllFriends, KindGroup},
		{"all relays", AllRelays, KindGroup},
		{"all nodes", AllNodes, KindGroup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.addr.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddressIsUnicast(t *testing.T) {
	if Address(0x0000).IsUnicast() {
		t.Error("unassigned address reported unicast")
	}
	if !Address(0x0001).IsUnicast() {
		t.Error("0x0001 not reported unicast")
	}
	if Address(0x8000).IsUnicast() {
		t.Error("virtual address reported unicast")
	}
	if AllNodes.IsUnicast() {
		t.Error("group address reported unicast")
	}
}

func TestAddressIsAssigned(t *testing.T) {
	if AddressUnassigned.IsAssigned() {
		t.Error("unassigned address reported assigned")
	}
	if !AllNodes.IsAssigned() {
		t.Error("all-nodes address reported unassigned")
	}
}

func TestAddressString(t *testing.T) {
	got := Address(0x0001).String()
	want := "0x0001 (UNICAST)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
