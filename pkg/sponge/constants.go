// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package sponge

import "github.com/consensys/go-vmtrace/pkg/util/field/f128"

// The tables below are protocol data: they define the concrete security and
// degree properties of the permutation, and must be reproduced bit-for-bit
// by any reimplementation.

// Exponent used by the forward S-box.
const alpha uint64 = 3

// Exponent used by the inverse S-box, i.e. the inverse of alpha modulo p-1.
const (
	invAlphaLo uint64 = 0xaaaa8caaaaaaaaab
	invAlphaHi uint64 = 0xaaaaaaaaaaaaaaaa
)

// mds is the linear-mixing matrix, stored in row-major order.
var mds = [StateWidth * StateWidth]f128.Element{
	{0x6d74c6bbfbf2c008, 0xed1f4b3562edaf82},
	{0x40307933f606b333, 0x0813eaea91258f69},
	{0xd3cdd2a0d97dcdde, 0x7b8151003d1e0717},
	{0x3d25f742442d590e, 0xd464a031b7eacc82},
	{0x66d162ffc4862bad, 0xff88222a3b6455a7},
	{0xaa9d9b933741e8be, 0x493707f0991828ce},
	{0x7ded7e3730d8d3d3, 0x6a170ab698d8148f},
	{0xd254ad9664a67b4a, 0xcc61ab10489b8d21},
	{0x8c374723f8b047fc, 0xf84972efcb433cc5},
	{0x557550f167d9f2f0, 0x1c199c7d0b511eaa},
	{0x5acb0dff8d750f12, 0xc3e4af8580e7cc83},
	{0x2a3e3fe819ad7731, 0x79ba99051e787890},
	{0x02862e9c4231e752, 0xa617c8350a973d1b},
	{0x4fcaf56b47bf110f, 0x822538f751ab2caf},
	{0x0eca070e83eb9e9b, 0x065ae3bbb5ad4231},
	{0xabdd04e4b70b0fc7, 0xcfe05584291fa459},
}

// invMds is the inverse of the linear-mixing matrix, stored in row-major order.
var invMds = [StateWidth * StateWidth]f128.Element{
	{0x2c2544ea715a83b4, 0x9f80c6e3eca2fa32},
	{0x70a2fc3596ce5eb2, 0xa7130aaba1b2795e},
	{0x9540f848e23d7db7, 0xec2ffff724c4919c},
	{0x8ba878c6334908b0, 0x471d997e32430dbe},
	{0x6c7591f843807018, 0x97d936624b2f3ff9},
	{0x7b722703343436a9, 0x1fce3f3cced93b0c},
	{0xa937cf0bbd861604, 0xfa704de4b984f629},
	{0xe2d8e4599b858a96, 0x02f6d0933ca618e8},
	{0x225198c75e3ee340, 0xb3e11e224c462b20},
	{0x926b192a484e379c, 0x869fce7e2ec64a90},
	{0xcf56e0966e7f227d, 0xcb38d2fb99c5cb75},
	{0x6c8ab0a60b03d8ca, 0xed7a19078c7c1ca0},
	{0x6347d4cb265aefd5, 0xe0796bf4ccfdb04d},
	{0x3c4ce422334c7339, 0x5643fc208ca07297},
	{0x97d597640cfed4b8, 0xd1eff892a088398b},
	{0xe2648fc98f7cc8c4, 0xe7c3ab59270cb516},
}

// ark holds the round constants: the first StateWidth rows are applied in
// the first half-round, the remainder in the second.  Each row cycles with
// period CycleLength.
var ark = [StateWidth * 2][CycleLength]f128.Element{
	{
		{0xffbc2c6fa19f117c, 0x377a51f405465695},
		{0x46f572e1b3392bfa, 0x8f31d523c3a4a1dc},
		{0xcc3a30b8588e6116, 0x663642766dc6b6ed},
		{0xd14c33976e039665, 0x0ad47da892055336},
		{0xcc2eed0d0156fbcf, 0x864f3bb0fa0567ac},
		{0xc40dc3db75a9ab63, 0x43350f30564860ab},
		{0x994b9fec8276cd22, 0x2d87394d6d6aefb5},
		{0xf9a1f8770f038dc5, 0xe1d9f104cd3b5ee6},
		{0xea06b0a3e7d93b02, 0xd821d93b05a04d42},
		{0x2abb3f836ab4a680, 0x034859a32afe5ba3},
		{0x5b8e152e8f477a76, 0x7f301541e56ab3fa},
		{0xf2eb943f895d8d45, 0x296ce99c6c6c94a7},
		{0x596773835a3a99f4, 0x246a833b91cc4110},
		{0x0abcfb2794a40463, 0x13bcf7c75dde7a96},
		{0x7d9af1d9abd277d3, 0x0625370c208c6731},
		{0xf19dfdc2e657e991, 0xed9ebeb434402b83},
	},
	{
		{0x787b38cf06d78a73, 0x80601a1b72fc5070},
		{0xd486117981073eac, 0xa9b08f3acd4e020f},
		{0xd982613042a01a4f, 0x20dfd5b1a78700fa},
		{0x7430249e89a32a60, 0xfb71c87b88de5166},
		{0x220713d9d89accb2, 0x8dadb58537e03700},
		{0x871f6659d298e248, 0x11ee13cfd70aed41},
		{0x15c921f60d6d7908, 0xc2193b34b59cbc5d},
		{0x370c36d257de744a, 0xa4e42412781d51e7},
		{0xdeeaed7574bab987, 0xdd5ce15a1f5cd51e},
		{0x8dbe03ef57072538, 0x86ff8d932ecbdeeb},
		{0x58433e1759965862, 0x810615d2a0e7d17f},
		{0x350efae7e8caab97, 0x5c1fbab3ac527f0c},
		{0xec054171f74f7c19, 0x4905b54a9072d87b},
		{0x8744ceaaffbca575, 0x74696459c0c3b5f0},
		{0x4126c80f1282e583, 0x58f13127f99fb153},
		{0x000a54f6d16aef0b, 0x33082b00c22704b9},
	},
	{
		{0x6d6a92ed634f970e, 0x7745697b4501945b},
		{0xfe9bbcf315bfbd2e, 0xd9a11bb29fe3693a},
		{0x835996bbbb1dad4c, 0x778c8f9cee5037ea},
		{0xe7ef6d7077bb94bd, 0x2c020c7e1b768529},
		{0x9643924b7ee90eae, 0x5ecae5367e84447b},
		{0xe7fb12c7991aa3d8, 0x1864ac2be6ba2d5b},
		{0x62ed637ba5ab7ddf, 0xfe13a25c0b72f60e},
		{0x93470079f487a836, 0x8172c01a0bf6fda2},
		{0xb542cd298a8f081d, 0x684ad51e89d7217d},
		{0x08c241caa4e02d34, 0x25a1322330af42d2},
		{0xf2eccb15300d351d, 0x0cc812bffc58a32d},
		{0x0d478dd9907d1e06, 0x34128c4af3038419},
		{0x63ff01c9de087cd6, 0x1f36e848045bafc2},
		{0xb7befa8368bcfcd1, 0xe022f910824da65d},
		{0x1d351ab0f0210277, 0xaf65581f64b16d98},
		{0x13fef8db86a16f05, 0x914ca2b424fcc219},
	},
	{
		{0x8416f7673585884a, 0x021ec245faaf0062},
		{0x822cf54d761c3bd4, 0x08642471600f9ca0},
		{0x8a0c584bd3e8c1b1, 0x681fe3a0abd285d7},
		{0x6a72257d3788e4db, 0xbb9adc8e8a76dc7c},
		{0x64a6663fd7617d00, 0xc5fa5de0acfb6187},
		{0xd6d2f708a64819b0, 0x20aaa8a7321bac14},
		{0xdd3a692fe0b7a909, 0xf3161241c9b17e16},
		{0xa34cea91e6da523d, 0xc964a99ca63389bc},
		{0xeb8bcaf2abb54bdf, 0x5789d8d4fa90e11b},
		{0x8a73a796c42712e7, 0xff341ea8294a83e4},
		{0x037c49fbb6dd94a8, 0x8bd65448e1b16893},
		{0x71662a07c5a6f733, 0xac1819bf7fda6c6c},
		{0xe0e895d0c57b6411, 0x48bb0c0356d0ebc1},
		{0x55a9d855d412f6da, 0xbee5bdb2b8b1f587},
		{0xe0f06048c6a5e0d2, 0x2e93bfbfd096aa3e},
		{0x9a6a373a89ef3e54, 0x9423841ba08d6231},
	},
	{
		{0x8b048f4adb23628d, 0x3e034c6abdd04514},
		{0xb3f5bb3aa95956f1, 0x281291edb33a13d5},
		{0x52cb0bb7d45931b6, 0xce9c9509bfe01a8f},
		{0x4dcb8c581bcbd0d1, 0x8eadfea30e612203},
		{0xbf85a543a12acd45, 0x5bc8affa5136a476},
		{0x821e77d939be7c42, 0x2eab27fe865b9379},
		{0xfb3a3608142123a9, 0x71f9033657ba019b},
		{0xb55e72c2fbd512ae, 0xb6b79dbbb120e431},
		{0xadefad881a6e0515, 0xd29397341da62c2d},
		{0x6a6ffa7a431b7cc8, 0x3abaca92c2c389e0},
		{0xd4b85f9570c8e9fd, 0x1b40963c658bc2f4},
		{0xa5cdbc3788755ef4, 0x52a6cc0b54553b9e},
		{0xb8d08af1abaad501, 0xf9bcf392540d3c82},
		{0xd0f1e54210cd479b, 0x3d7538c7ba205ea4},
		{0x03d5953dcc491841, 0x09344add6cd32c18},
		{0x9d06fca245ae0afb, 0x7ce2e376bd8fa23d},
	},
	{
		{0x361103308fe8243b, 0xf59b8c8765bfc0bb},
		{0xb1ca61746c72198a, 0x9d43a51e95068249},
		{0x64385858701a1254, 0xb0656fb7e51c1bc3},
		{0x9cc250511f29f637, 0xea1b9465550216f2},
		{0xa5867b8632455f31, 0x1330e79ebc2080c5},
		{0xb67be14c68690b88, 0x39fe56926c429b83},
		{0x874bbf635e7d6d62, 0x05bf901dc0a087cc},
		{0x56c79e41427bde79, 0x7fe98b1db90a5230},
		{0x71c0c8bbc32a5eed, 0x73d48dc806bcde32},
		{0xc1fe123aa681e9d8, 0x1bf5610f576b1e51},
		{0xf080fd28d96f9789, 0x515fd9487902fb5d},
		{0x71a9ca4c60f57a7b, 0x3444a41ab0a32110},
		{0x439a5353d9f14a9d, 0x2292a64b74ebbd7f},
		{0x431f2e5a1130bd8b, 0xc491debb62dd2905},
		{0xc5ff57dde3c143de, 0xf2100166e51a573a},
		{0x6cfd34402cd7063d, 0xfbf46b076b47b7c8},
	},
	{
		{0x166947061289c2d7, 0xe99f9a48d3c2fa44},
		{0xe5e32c4c667a9a78, 0xa655929b66e28edb},
		{0xa0b52bc24a54f883, 0xce96f8f206796db7},
		{0xc1cfe9ce757246f7, 0xad7dcea0cb31bd8e},
		{0x0431941883896456, 0x2c904bc57f537bbb},
		{0x8536a28566d7967d, 0x61b56c3a58f4ff12},
		{0x33478ea7a4c571f6, 0xbc29085be1508a52},
		{0xd702ce43ab568ee4, 0xae97fd54b2dce43d},
		{0x98f50d2099d1556d, 0xe096ea13f977dd01},
		{0xf1dd251e8d885340, 0xc77d97bf6286a5ba},
		{0xf643b82cc228c17c, 0x7d4b83f6c57dc43c},
		{0x1e7bb0742776a41a, 0x4d5d645805ec52d5},
		{0x19e244fbac3fbb6a, 0x8e85d5a192e60366},
		{0x2a72364288b967ed, 0xe3bd9314a9ba9a07},
		{0x558f706c136cfcb6, 0x484025679a082b65},
		{0x65093fb08d9b60e5, 0xa14d187a9b6cf083},
	},
	{
		{0x45d0f34eac122011, 0xad82daac4b3e0f33},
		{0x37b786530d310902, 0xdc72f52b533cc70f},
		{0xa73a542063cc5d71, 0x58dbf1e6bb36a2c1},
		{0x6a3120cf11a8f1f1, 0x8b3ee928d33798c9},
		{0xcdf298544ac34e84, 0xe21ab9b078ad5c5b},
		{0x7e768c1d050455cb, 0xd6391ff76c72d728},
		{0x27786e3ecc97ea76, 0x2eeb230c6bb361a6},
		{0x9206fd4173cb1036, 0xb73fad67c81aa242},
		{0x09836e009bd89c52, 0x45fcaf4dffbffb3f},
		{0xe58d52550169f121, 0x7971903ef713bd52},
		{0x1f7bf68050e0ee75, 0x9cf53a6dbe6f311c},
		{0x56ab375c6c9f02c7, 0x8be2f0de3c92c624},
		{0x8ed053a3a0d3416d, 0x898efa754e4792c2},
		{0xe14aa57b32261430, 0x7a8bf61a94322208},
		{0xa4b27db84bff9a63, 0x4c483c71ddfaa03e},
		{0x0ab70ee4a5e856ff, 0x8fc2aad83593ee79},
	},
}
