// Package builder provides reusable "functional-options"-style fixtures for
// pattern matrices. It lives alongside the pattern and matrix packages to
// centralize the clause tables that tests, benchmarks, examples and the patc
// demo command compile, keeping them deterministic and consistent.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildMatrix(bopts, fixtures...): one signature, one matrix, actions
//     numbered from WithActionBase (default 1) in emission order.
//     – Fixture: a function appending rows to a Table under a builderConfig.
//   - Fixtures:
//     – ListSplit():         the List/Split reference table (3 rows, 2 columns).
//     – TruthTable(n):       all 2^n rows over n Bool columns.
//     – Enum(n):             one row per variant of an n-variant enum.
//     – OrChain(n):          a single row holding every enum variant as an or-pattern.
//     – ListPrefixes(depth): Nil, Cons(_, Nil), ... up to depth conses.
//     – CatchAll(n):         one row of n wildcards.
//     – RandomTable(r, c):   seeded random Bool/Option patterns.
//   - Variant naming schemes (NameFn): PrefixNames, SymbolNames, ExcelColumnNames.
//   - Options: WithSeed, WithRand, WithNameScheme, WithOpenTypes,
//     WithActionBase, WithWildcardProbability.
//
// Guarantees:
//
//   - Determinism: same fixtures, options and seed ⇒ identical matrices.
//   - Types are declared once per Table; fixtures that share a type name
//     must agree on its variants.
//   - Option constructors panic on meaningless values; fixtures return
//     sentinel errors and never panic.
package builder
