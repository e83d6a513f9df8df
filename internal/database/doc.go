// 版权所有 2024 repo-quality-tool Authors. 版权所有。
// 此源代码的使用由 MIT 许可规范,该许可可以是
// 在LICENSE文件中找到。

/*
包 database 提供基于 GORM + SQLite 的连接池管理与事务重试。

# 概述

本包通过 PoolManager 封装 GORM 与 database/sql 的连接池配置。
OpenSQLite 使用纯 Go 的 glebarez/sqlite 驱动打开数据库文件，
关闭 GORM 自带日志，并在返回前完成一次探活。

# 核心类型

  - PoolManager：连接池管理器，持有 GORM DB 实例与底层 sql.DB，
    提供 DB()、Ping()、Close() 等生命周期方法。
  - PoolConfig：连接池配置，包含最大打开连接数、最大空闲连接数、
    连接最大生命周期与探活超时。
  - TransactionFunc：事务回调函数类型。

# 主要能力

  - 事务管理：WithTransaction 提供单次事务执行，
    WithTransactionRetry 在 SQLite 锁冲突时指数退避重试。
*/
package database
