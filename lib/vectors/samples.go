// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package vectors

import "github.com/hashgen/hashgen/lib/canon"

// scalarSamples holds, per kind, the boundary values and a few
// ordinary ones. Floats include the smallest denormal and the
// non-finite values, whose bit patterns must pass through unchanged.
var scalarSamples = map[canon.Kind][]string{
	canon.Byte:  {"-128", "-23", "0", "87", "127"},
	canon.Char:  {"a", "B", "F", "#", "~", "0x0000", "0xffff"},
	canon.Short: {"-32768", "-647", "0", "6487", "32767"},
	canon.Int:   {"-2147483648", "-256", "0", "191867248", "2147483647"},
	canon.Long:  {"-9223372036854775808", "-36028797018963968", "0", "2305843009213693952", "9223372036854775807"},
	canon.Float: {"1e-45", "-234.7234621", "0", "-0", "232864343.234027846268", "3.4028235e+38", "NaN", "+Inf", "-Inf"},
	canon.Double: {
		"5e-324", "-9082741083.082348", "0", "-0", "2340823.9875672394",
		"1.7976931348623157e+308", "NaN", "+Inf", "-Inf",
	},
	canon.String: {
		"",
		"Here is a String that is human readable.  It is a lot easier to read than the random Strings that are in this test data set, no?",
		"%[jG8IuFkuz:2>P8OFHs2[#n)w&KrlXzNy:c2bzg#vGuB6(e9sW$wxr3+AmS]>]AZJA5TZs)l5CYy)<qR!4WQ>#IE&f076N:joF(*lT6E1t$Tr%P<3R$:h#N<YpnQnrh",
		"J!^ktjn@^N1_f33>cJ:iBTR2nH7Q0uaSs35^O0n)%V)MKC[5RBpD_aU%A>VPfFjv8xr+o>!f2<(bqnFKxyhQ<N]fAa52pF>6Hm1G5%[h+vHfomJ)qg)GgoO_v9$#&EL2",
	},
}

// arraySamples holds, per kind, whole arrays. Every kind includes the
// empty array, which digests the empty input.
var arraySamples = map[canon.Kind][][]string{
	canon.Byte: {
		{},
		{"-128", "0", "2", "7"},
		{"0", "127", "-128", "-1"},
	},
	canon.Char: {
		{},
		{"t", "h", "i", "s", "a", "b", "a", "d", "p", "a", "s", "s", "w", "o", "r", "d"},
		{"0xd83d", "0xde00"},
	},
	canon.Short: {
		{},
		{"-32768", "0", "647", "32767"},
	},
	canon.Int: {
		{},
		{"-2147483648", "647", "2147483647"},
	},
	canon.Long: {
		{},
		{"-9223372036854775808", "647", "700", "9223372036854775807"},
	},
	canon.Float: {
		{},
		{"-3.4028235e+38", "3.1415927", "1.1754944e-38", "1e-45", "3.4028235e+38"},
	},
	canon.Double: {
		{},
		{"-1.7976931348623157e+308", "3.141592653589793", "2.2250738585072014e-308", "5e-324", "1.7976931348623157e+308"},
	},
	canon.String: {
		{},
		{
			"Yo", "man,", "this", "is", "a", "test", "sentence", "that", "we",
			"are", "going", "to", "tokenize", "for", "some", "test", "data.",
		},
		{":L_,d?A32kE$xNiJ(5+y@JJF7(2Yq,", "@:.)]i*rmh.fd,3Rnm##aPbLinn39B", "=&M$72r(?+YQgVMf-+}V8v&8yJvk_7"},
	},
}
