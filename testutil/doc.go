// Copyright 2026 repo-quality-tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

/*
Package testutil 提供测试的共享工具和辅助函数。

# 概述

testutil 包为各包的单元测试提供统一的辅助能力，
避免各包重复实现相似的测试基础设施。

# 核心能力

  - 上下文辅助: TestContext / CancelledContext，自动注册 Cleanup 防止泄漏
  - 文件辅助: WriteSource 在临时目录写入待分析的源文件
  - 断言工具: AssertValue / AssertUndefined 检查可选度量值
  - 数据工具: MustParseJSON 解析命令行输出

# 子包

  - testutil/mocks: MockTokenizer，支持 Builder 模式与错误注入
  - testutil/fixtures: 预置源码样例及其期望度量

# 使用示例

	path := testutil.WriteSource(t, "a.js", fixtures.JSDeclaration)
	res, err := svc.AnalyzeFile(testutil.TestContext(t), path, "")
	testutil.AssertValue(t, fixtures.JSDeclarationVolume, res.Result.Volume)
*/
package testutil
