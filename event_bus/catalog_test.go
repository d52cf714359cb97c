package event_bus

import (
	. "gopkg.in/check.v1"
)

type CatalogSuite struct{}

var _ = Suite(&CatalogSuite{})

func (s *CatalogSuite) TestOrdinalsFollowDeclarationOrder(c *C) {
	for i, kindObj := range builtinKinds {
		c.Assert(kindObj.Ordinal(), Equals, i)
	}
}

func (s *CatalogSuite) TestNamesAreUnique(c *C) {
	seenNames := make(map[string]bool, len(builtinKinds))
	for _, kindObj := range builtinKinds {
		c.Assert(seenNames[kindObj.Name()], Equals, false)
		seenNames[kindObj.Name()] = true
	}
}

func (s *CatalogSuite) TestAllBuiltinsResolvable(c *C) {
	registry := NewDefaultRegistry()
	c.Assert(registry.Count(), Equals, len(builtinKinds))

	for _, kindObj := range builtinKinds {
		resolvedKind, resolveError := registry.ResolveByName(kindObj.Name())
		c.Assert(resolveError, IsNil)
		c.Assert(resolvedKind, Equals, kindObj)
	}
}

func (s *CatalogSuite) TestBuiltinsAreSharedBetweenRegistries(c *C) {
	firstRegistry := NewDefaultRegistry()
	secondRegistry := NewDefaultRegistry()

	firstKind, firstError := firstRegistry.ResolveByName("flush")
	c.Assert(firstError, IsNil)
	secondKind, secondError := secondRegistry.ResolveByName("flush")
	c.Assert(secondError, IsNil)
	c.Assert(firstKind, Equals, secondKind)
}

func (s *CatalogSuite) TestCommitHooksShareCapabilityWithPostHooks(c *C) {
	c.Assert(PostCommitInsert.CapabilityType(), Equals, PostInsert.CapabilityType())
	c.Assert(PostCommitUpdate.CapabilityType(), Equals, PostUpdate.CapabilityType())
	c.Assert(PostCommitDelete.CapabilityType(), Equals, PostDelete.CapabilityType())
}

func (s *CatalogSuite) TestSaveVariantsShareCapability(c *C) {
	c.Assert(Update.CapabilityType(), Equals, SaveUpdate.CapabilityType())
	c.Assert(Save.CapabilityType(), Equals, SaveUpdate.CapabilityType())
	c.Assert(PersistOnFlush.CapabilityType(), Equals, Persist.CapabilityType())
}

func (s *CatalogSuite) TestStringIsName(c *C) {
	c.Assert(Load.String(), Equals, "load")
	c.Assert(PreCollectionRecreate.String(), Equals, "pre-collection-recreate")
}
