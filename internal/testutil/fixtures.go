package testutil

import "github.com/stratoframe/forge"

// Root is the component root every fixture in this package registers
// under, matching the root a test Container built with NewContainerBuilder
// is configured with.
const Root = "test/"

func init() {
	forge.RegisterComponent(Root+"Bus", func() any { return &Bus{} })
	forge.RegisterComponent(Root+"SystemClock", func() any { return &SystemClock{} })
	forge.RegisterComponent(Root+"FakeClock", func() any { return &FakeClock{} })
	forge.RegisterComponent(Root+"Base", func() any { return &Base{} })
	forge.RegisterComponent(Root+"Child", func() any { return &Child{} })
	forge.RegisterComponent(Root+"A", func() any { return &A{} })
	forge.RegisterComponent(Root+"B", func() any { return &B{} })
	forge.RegisterComponent(Root+"P1", func() any { return &P1{} })
	forge.RegisterComponent(Root+"P2", func() any { return &P2{} })
	forge.RegisterComponent(Root+"CyclicA", func() any { return &CyclicA{} })
	forge.RegisterComponent(Root+"CyclicB", func() any { return &CyclicB{} })
	forge.RegisterComponent(Root+"RealPlaces", func() any { return &RealPlaces{} })
	forge.RegisterComponent(Root+"MockPlaces", func() any { return &MockPlaces{} })
	forge.RegisterComponent(Root+"Locator", func() any { return &Locator{} })

	forge.RegisterCapability[Clock](Root + "Clock")
	forge.RegisterCapability[HasActivity](Root + "HasActivity")
	forge.RegisterCapability[Places](Root + "Places")
}
